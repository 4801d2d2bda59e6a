package redboy

import "testing"

func TestPSWRoundTrip(t *testing.T) {
	p := PSW{
		Z: true, S: false, OV: true, CY: true,
		FPR: true, FUD: false, FOV: true, FZD: false,
		FIV: true, FRO: false,
		ID: true, AE: false, EP: true, NP: true,
		I: 0xF,
	}
	got := PSWFromU32(p.ToU32())
	if got != p {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, p)
	}
}

func TestPSWBitPositions(t *testing.T) {
	p := PSW{Z: true}
	if p.ToU32() != 1<<pswBitZ {
		t.Errorf("Z flag not at bit %d", pswBitZ)
	}
	p = PSW{NP: true}
	if p.ToU32() != 1<<pswBitNP {
		t.Errorf("NP flag not at bit %d", pswBitNP)
	}
	p = PSW{I: 0xF}
	if p.ToU32() != 0xF<<pswBitI {
		t.Errorf("I field not at bits %d-%d", pswBitI, pswBitI+3)
	}
}

func TestTKCWRoundTrip(t *testing.T) {
	tk := TKCW{RoundMode: 2, FRO: true, FIV: false, FZD: true, FOV: false, FUD: true, FPR: false}
	got := TKCWFromU32(tk.ToU32())
	if got != tk {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, tk)
	}
}
