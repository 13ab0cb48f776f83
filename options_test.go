package meter

import "testing"

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.label != "" || o.formatter != nil || o.locale != nil || o.theme != nil {
		t.Errorf("defaultOptions() = %+v, want empty", o)
	}
	if o.precision != -1 {
		t.Errorf("precision = %d, want -1", o.precision)
	}
}

func TestWithOptions(t *testing.T) {
	o := defaultOptions()
	WithLabel("rpm")(&o)
	WithTheme(DarkTheme)(&o)

	if o.label != "rpm" {
		t.Errorf("label = %q, want rpm", o.label)
	}
	if o.theme == nil || *o.theme != DarkTheme {
		t.Errorf("theme = %v, want DarkTheme", o.theme)
	}
}
