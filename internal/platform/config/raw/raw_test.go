package raw

import "testing"

func TestGet(t *testing.T) {
	c := New().Prefix("LOG_")
	t.Setenv("LOG_FORMAT", "  json ")
	if got := c.Get("FORMAT", "console"); got != "json" {
		t.Fatalf("Get = %q", got)
	}
	if got := c.Get("LEVEL", "debug"); got != "debug" {
		t.Fatalf("Get default = %q", got)
	}
}

func TestGetBool(t *testing.T) {
	c := New().Prefix("LOG_")
	cases := []struct {
		val  string
		def  bool
		want bool
	}{
		{"", true, true},
		{"", false, false},
		{"1", false, true},
		{"YES", false, true},
		{"on", false, true},
		{"no", true, false},
		{"garbage", true, false},
	}
	for _, tc := range cases {
		t.Setenv("LOG_CALLER", tc.val)
		if got := c.GetBool("CALLER", tc.def); got != tc.want {
			t.Fatalf("GetBool(%q, %v) = %v, want %v", tc.val, tc.def, got, tc.want)
		}
	}
}

func TestGetInt(t *testing.T) {
	c := New().Prefix("LOG_")
	cases := []struct {
		val  string
		want int
	}{
		{"", 7},
		{"10", 10},
		{"-3", 7},
		{"+3", 7},
		{"3x", 7},
	}
	for _, tc := range cases {
		t.Setenv("LOG_SAMPLE_EVERY", tc.val)
		if got := c.GetInt("SAMPLE_EVERY", 7); got != tc.want {
			t.Fatalf("GetInt(%q) = %d, want %d", tc.val, got, tc.want)
		}
	}
}
