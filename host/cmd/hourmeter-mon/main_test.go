package main

import "testing"

func TestSetCommand(t *testing.T) {
	testCases := []struct {
		arg      string
		expected string
		wantErr  bool
	}{
		{arg: "38:52", expected: "SET_TOTAL H=38 M=52\n"},
		{arg: "0:0", expected: "SET_TOTAL H=0 M=0\n"},
		{arg: "100:5", expected: "SET_TOTAL H=100 M=5\n"},
		{arg: "38", wantErr: true},
		{arg: "38:60", wantErr: true},
		{arg: "x:10", wantErr: true},
		{arg: "10:y", wantErr: true},
	}

	for _, tc := range testCases {
		got, err := setCommand(tc.arg)
		if tc.wantErr {
			if err == nil {
				t.Errorf("setCommand(%q) succeeded, want error", tc.arg)
			}
			continue
		}
		if err != nil {
			t.Errorf("setCommand(%q) failed: %v", tc.arg, err)
			continue
		}
		if got != tc.expected {
			t.Errorf("setCommand(%q) = %q, want %q", tc.arg, got, tc.expected)
		}
	}
}
