package timecode

import "testing"

func TestParse_Table(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00:00", 0, false},
		{"01:00:00", 3600, false},
		{"10:15:30", 36930, false},
		{"99:59:59", 359999, false},
		{"123:00:01", 442801, false},
		{"1:2", 0, true},
		{"10:15", 0, true},
		{"10:15:30:00", 0, true},
		{"aa:bb:cc", 0, true},
		{"10:1x:30", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q): expected error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormat_RoundTrip(t *testing.T) {
	for _, s := range []int{0, 1, 59, 60, 3599, 3600, 36930, 359999, 360000, 1000000} {
		got, err := Parse(Format(s))
		if err != nil {
			t.Fatalf("Parse(Format(%d)): %v", s, err)
		}
		if got != s {
			t.Fatalf("Parse(Format(%d)) = %d", s, got)
		}
	}
}

func TestFormat_WidensHours(t *testing.T) {
	if got := Format(360000); got != "100:00:00" {
		t.Fatalf("Format(360000) = %q, want 100:00:00", got)
	}
}

func TestFormat_ReproducesWellFormedInput(t *testing.T) {
	for _, in := range []string{"00:00:00", "01:30:00", "10:17:00", "99:59:59"} {
		sec, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", in, err)
		}
		if got := Format(sec); got != in {
			t.Fatalf("Format(Parse(%q)) = %q", in, got)
		}
	}
}

func TestAdd(t *testing.T) {
	got, err := Add("01:00:00", "00:30:00")
	if err != nil {
		t.Fatal(err)
	}
	if got != "01:30:00" {
		t.Fatalf("Add = %q, want 01:30:00", got)
	}
}

func TestAdd_ZeroIsIdentity(t *testing.T) {
	for _, d := range []string{"00:00:01", "00:02:00", "12:34:56"} {
		got, err := Add("00:00:00", d)
		if err != nil {
			t.Fatal(err)
		}
		sec, _ := Parse(d)
		if got != Format(sec) {
			t.Fatalf("Add(00:00:00, %q) = %q, want %q", d, got, Format(sec))
		}
	}
}

func TestAdd_PastMidnightDoesNotWrap(t *testing.T) {
	got, err := Add("23:30:00", "01:00:00")
	if err != nil {
		t.Fatal(err)
	}
	if got != "24:30:00" {
		t.Fatalf("Add = %q, want 24:30:00", got)
	}
}

func TestFind(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{"plain", "CAM-01 10:15:00 REC", "10:15:00", true},
		{"first match wins", "10:15:00 and later 11:00:00", "10:15:00", true},
		{"embedded noise", "x09:59:59y", "09:59:59", true},
		{"no match", "no digits here", "", false},
		{"too short", "9:5:1", "", false},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Find(tt.in)
			if ok != tt.wantOK || got != tt.want {
				t.Fatalf("Find(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
