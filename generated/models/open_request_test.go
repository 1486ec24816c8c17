package models

import (
	"testing"

	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
)

func TestOpenRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     OpenRequest
		wantErr bool
	}{
		{"both set", OpenRequest{IsDoorOpen: swag.Bool(false), IsInterphoneOpen: swag.Bool(false)}, false},
		{"door missing", OpenRequest{IsInterphoneOpen: swag.Bool(true)}, true},
		{"interphone missing", OpenRequest{IsDoorOpen: swag.Bool(true)}, true},
		{"empty", OpenRequest{}, true},
	}

	for _, tc := range tests {
		err := tc.req.Validate(strfmt.Default)
		if (err != nil) != tc.wantErr {
			t.Errorf("%s: expected error=%v, got %v", tc.name, tc.wantErr, err)
		}
	}
}

func TestOpenRequest_UnmarshalBinary(t *testing.T) {
	var req OpenRequest
	if err := req.UnmarshalBinary([]byte(`{"isDoorOpen":true,"isInterphoneOpen":false}`)); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}

	if !swag.BoolValue(req.IsDoorOpen) || swag.BoolValue(req.IsInterphoneOpen) || req.IsInterphoneOpen == nil {
		t.Errorf("unexpected request %+v", req)
	}
}

func TestOpenResponse_ValidateNested(t *testing.T) {
	resp := OpenResponse{
		Message: swag.String("ok"),
		Result:  &OpenResult{DoorOpen: swag.String("open")},
	}

	if err := resp.Validate(strfmt.Default); err == nil {
		t.Error("expected an error for a missing interphoneOpen")
	}

	resp.Result.InterphoneOpen = swag.String("not open")
	if err := resp.Validate(strfmt.Default); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
