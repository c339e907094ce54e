package buffer

import (
	"errors"
	"testing"
)

type testCase struct {
	name      string
	capacity  int
	incFactor int
	mode      Mode
	e         expect
}

type expect struct {
	err       error
	mode      Mode
	incFactor int
	capacity  int
}

func TestNew(t *testing.T) {
	testCases := []testCase{
		{name: "fixed", capacity: 8, incFactor: 10, mode: Fixed, e: expect{mode: Fixed, incFactor: 0, capacity: 8}},
		{name: "fixed-zero-capacity", capacity: 0, incFactor: 0, mode: Fixed, e: expect{err: ErrConfig}},
		{name: "additive", capacity: 8, incFactor: 255, mode: Additive, e: expect{mode: Additive, incFactor: 255, capacity: 8}},
		{name: "additive-zero-capacity", capacity: 0, incFactor: 16, mode: Additive, e: expect{mode: Additive, incFactor: 16, capacity: 0}},
		{name: "additive-inc-too-large", capacity: 8, incFactor: 256, mode: Additive, e: expect{err: ErrConfig}},
		{name: "multiplicative", capacity: 8, incFactor: 100, mode: Multiplicative, e: expect{mode: Multiplicative, incFactor: 100, capacity: 8}},
		{name: "multiplicative-inc-too-large", capacity: 8, incFactor: 101, mode: Multiplicative, e: expect{err: ErrConfig}},
		{name: "zero-inc-forces-fixed", capacity: 4, incFactor: 0, mode: Additive, e: expect{mode: Fixed, incFactor: 0, capacity: 4}},
		{name: "zero-inc-zero-capacity", capacity: 0, incFactor: 0, mode: Multiplicative, e: expect{mode: Fixed, incFactor: 0, capacity: 0}},
		{name: "negative-capacity", capacity: -1, incFactor: 10, mode: Additive, e: expect{err: ErrConfig}},
		{name: "max-size", capacity: MaxSize, incFactor: 10, mode: Additive, e: expect{err: ErrConfig}},
		{name: "max-capacity", capacity: MaxCapacity, incFactor: 10, mode: Additive, e: expect{mode: Additive, incFactor: 10, capacity: MaxCapacity}},
		{name: "negative-inc", capacity: 8, incFactor: -1, mode: Multiplicative, e: expect{err: ErrConfig}},
		{name: "unknown-mode", capacity: 8, incFactor: 10, mode: Mode(7), e: expect{err: ErrConfig}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			buf, err := New(tc.capacity, tc.incFactor, tc.mode)
			if tc.e.err != nil {
				if !errors.Is(err, tc.e.err) || buf != nil {
					t.Logf("expect error: %v, got: %v, buffer: %v", tc.e.err, err, buf)
					t.FailNow()
				}
				return
			}
			if err != nil {
				t.Error(err)
				t.FailNow()
			}
			if mode, _ := buf.Mode(); mode != tc.e.mode {
				t.Logf("expect mode: %v, got: %v", tc.e.mode, mode)
				t.FailNow()
			}
			if inc, _ := buf.IncFactor(); inc != tc.e.incFactor {
				t.Logf("expect inc factor: %d, got: %d", tc.e.incFactor, inc)
				t.FailNow()
			}
			if c, _ := buf.Capacity(); c != tc.e.capacity {
				t.Logf("expect capacity: %d, got: %d", tc.e.capacity, c)
				t.FailNow()
			}
			limit, _ := buf.Limit()
			rOff, _ := buf.ReadOffset()
			mOff, _ := buf.MarkOffset()
			relocated, _ := buf.Relocated()
			eob, _ := buf.EOB()
			if limit != 0 || rOff != 0 || mOff != 0 || relocated || eob {
				t.Logf("expect zero state, got limit=%d read=%d mark=%d relocated=%v eob=%v", limit, rOff, mOff, relocated, eob)
				t.FailNow()
			}
		})
	}
}

func TestParseMode(t *testing.T) {
	valid := map[string]Mode{
		"f": Fixed, "fixed": Fixed, "A": Additive, "additive": Additive,
		"m": Multiplicative, " Multiplicative ": Multiplicative,
	}
	for token, want := range valid {
		if got, err := ParseMode(token); err != nil || got != want {
			t.Errorf("ParseMode(%q) = %v, %v; want %v", token, got, err, want)
		}
	}
	if _, err := ParseMode("x"); !errors.Is(err, ErrConfig) {
		t.Errorf("expect ErrConfig, got: %v", err)
	}
}

func TestBuffer_Released(t *testing.T) {
	buf, err := New(4, 2, Additive)
	if err != nil {
		t.Fatal(err)
	}
	_ = buf.Append('a')
	if err := buf.Free(); err != nil {
		t.Fatal(err)
	}
	var nilBuf *Buffer
	for _, b := range []*Buffer{buf, nilBuf} {
		checks := map[string]error{}
		_, checks["Limit"] = b.Limit()
		_, checks["Capacity"] = b.Capacity()
		_, checks["Mode"] = b.Mode()
		_, checks["IncFactor"] = b.IncFactor()
		_, checks["Relocated"] = b.Relocated()
		_, checks["IsEmpty"] = b.IsEmpty()
		_, checks["IsFull"] = b.IsFull()
		_, checks["NeedsGrowth"] = b.NeedsGrowth()
		_, checks["EOB"] = b.EOB()
		_, checks["ReadOffset"] = b.ReadOffset()
		_, checks["MarkOffset"] = b.MarkOffset()
		_, checks["ReadByte"] = b.ReadByte()
		_, checks["Mark"] = b.Mark(0)
		_, checks["Retract"] = b.Retract()
		_, checks["Reset"] = b.Reset()
		_, checks["Locate"] = b.Locate(0)
		checks["Append"] = b.Append('b')
		checks["Rewind"] = b.Rewind()
		checks["Clear"] = b.Clear()
		checks["Compact"] = b.Compact(0)
		checks["ResetRelocated"] = b.ResetRelocated()
		checks["Free"] = b.Free()
		for name, err := range checks {
			if !errors.Is(err, ErrNilBuffer) {
				t.Errorf("%s: expect ErrNilBuffer, got: %v", name, err)
			}
		}
	}
}

func TestBuffer_Clear(t *testing.T) {
	buf, _ := New(2, 4, Additive)
	_, _ = buf.Write([]byte("hello"))
	_, _ = buf.ReadByte()
	_, _ = buf.Mark(1)
	capBefore, _ := buf.Capacity()
	if err := buf.Clear(); err != nil {
		t.Fatal(err)
	}
	limit, _ := buf.Limit()
	rOff, _ := buf.ReadOffset()
	mOff, _ := buf.MarkOffset()
	empty, _ := buf.IsEmpty()
	c, _ := buf.Capacity()
	relocated, _ := buf.Relocated()
	if limit != 0 || rOff != 0 || mOff != 0 || !empty {
		t.Errorf("expect cleared cursors, got limit=%d read=%d mark=%d", limit, rOff, mOff)
	}
	if c != capBefore {
		t.Errorf("expect capacity kept: %d, got: %d", capBefore, c)
	}
	if !relocated {
		t.Error("expect relocation flag to survive Clear")
	}
	if err := buf.ResetRelocated(); err != nil {
		t.Fatal(err)
	}
	if relocated, _ = buf.Relocated(); relocated {
		t.Error("expect relocation flag cleared by ResetRelocated")
	}
}

func TestBuffer_IsFull(t *testing.T) {
	buf, _ := New(4, 0, Fixed)
	_, _ = buf.Write([]byte("ab"))
	if full, _ := buf.IsFull(); full {
		t.Error("expect unread buffer not full")
	}
	for i := 0; i < 3; i++ {
		_, _ = buf.ReadByte()
	}
	full, _ := buf.IsFull()
	eob, _ := buf.EOB()
	if !full || !eob {
		t.Errorf("expect full and eob after reading past the end, got full=%v eob=%v", full, eob)
	}
	_ = buf.Append('c')
	if c, _ := buf.ReadByte(); c != 'c' {
		t.Fatalf("expect 'c', got %q", c)
	}
	if full, _ = buf.IsFull(); full {
		t.Error("expect a successful read to clear the flag")
	}
}

func TestBuffer_NeedsGrowth(t *testing.T) {
	buf, _ := New(2, 0, Fixed)
	if grow, _ := buf.NeedsGrowth(); grow {
		t.Error("expect empty buffer to have room")
	}
	_ = buf.Append('a')
	_ = buf.Append('b')
	if grow, _ := buf.NeedsGrowth(); !grow {
		t.Error("expect buffer at capacity to need growth")
	}
}
