package export

import (
	"bytes"
	"testing"
)

func TestParseFilter(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"", FilterLanczos, false},
		{"Lanczos", FilterLanczos, false},
		{" catmullrom ", FilterCatmullRom, false},
		{"linear", FilterLinear, false},
		{"nearest", FilterNearest, false},
		{"box", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFilter(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFilter(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFilter(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestResizeIsDeterministic(t *testing.T) {
	src := testCanvas(300)
	for _, filter := range []string{FilterLanczos, FilterCatmullRom, FilterLinear, FilterNearest} {
		for _, size := range []int{48, 72, 96, 144, 192} {
			a, err := Resize(src, size, filter)
			if err != nil {
				t.Fatalf("%s/%d: %v", filter, size, err)
			}
			b, err := Resize(src, size, filter)
			if err != nil {
				t.Fatal(err)
			}
			if a.Bounds().Dx() != size || a.Bounds().Dy() != size {
				t.Errorf("%s/%d: bounds = %v", filter, size, a.Bounds())
			}
			if !bytes.Equal(a.Pix, b.Pix) {
				t.Errorf("%s/%d: two resizes differ", filter, size)
			}
		}
	}
}

func TestResizeKeepsTransparentCorner(t *testing.T) {
	dst, err := Resize(testCanvas(512), 48, FilterLanczos)
	if err != nil {
		t.Fatal(err)
	}
	if a := dst.NRGBAAt(0, 0).A; a != 0 {
		t.Errorf("corner alpha = %d, want 0", a)
	}
	if a := dst.NRGBAAt(40, 40).A; a != 0xFF {
		t.Errorf("interior alpha = %d, want 255", a)
	}
}

func TestResizeRejectsBadInput(t *testing.T) {
	if _, err := Resize(testCanvas(8), 0, FilterLanczos); err == nil {
		t.Error("size 0 accepted")
	}
	if _, err := Resize(testCanvas(8), 4, "sinc"); err == nil {
		t.Error("unknown filter accepted")
	}
}
