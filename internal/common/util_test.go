package common

import (
	"errors"
	"fmt"
	"testing"
)

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	WipeByteArray(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("expected buf[%d]==0, got %d", i, v)
		}
	}
}

func TestWipeByteArray_NilSafe(t *testing.T) {
	WipeByteArray(nil)
}

func TestErrors_MatchThroughWrapping(t *testing.T) {
	err := fmt.Errorf("enroll: %w", ErrNoProfile)
	if !errors.Is(err, ErrNoProfile) {
		t.Fatalf("expected wrapped error to match ErrNoProfile")
	}
	if errors.Is(err, ErrInvalidToken) {
		t.Fatalf("unexpected match with ErrInvalidToken")
	}
}
