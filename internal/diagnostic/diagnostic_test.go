package diagnostic

import "testing"

func TestKindFatal(t *testing.T) {
	cases := []struct {
		kind  Kind
		fatal bool
	}{
		{LexError, false},
		{ParseError, true},
		{ResourceExhaustedSourceSize, true},
		{ResourceExhaustedTokenCount, true},
		{ResourceExhaustedArenaCapacity, true},
		{ResourceExhaustedRecursionDepth, true},
		{ResourceExhaustedDeadline, true},
	}
	for _, c := range cases {
		t.Run(c.kind.String(), func(t *testing.T) {
			if got := c.kind.Fatal(); got != c.fatal {
				t.Errorf("%s.Fatal() = %v, want %v", c.kind, got, c.fatal)
			}
		})
	}
}

func TestNewDefaultsMessageToKindName(t *testing.T) {
	d := New(ParseError, 5, 1, 6, "")
	if d.Message != ParseError.String() {
		t.Errorf("Message = %q, want %q", d.Message, ParseError.String())
	}
}

func TestErrorIncludesPosition(t *testing.T) {
	d := New(ParseError, 5, 2, 6, "unexpected token")
	got := d.Error()
	if got == "" {
		t.Fatal("Error() returned empty string")
	}
}
