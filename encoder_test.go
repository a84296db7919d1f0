package uricodec_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"go.uber.org/mock/gomock"

	"github.com/ghettovoice/uricodec"
	"github.com/ghettovoice/uricodec/internal/mocks"
)

func TestEncoder_PointerScalars(t *testing.T) {
	t.Parallel()

	str := "Hello World"
	num := int64(42)
	flag := true
	fl := 1.5

	cases := []struct {
		name string
		val  any
		want string
	}{
		{"string ptr", &str, "key=Hello%20World"},
		{"int64 ptr", &num, "key=42"},
		{"bool ptr", &flag, "key=true"},
		{"float64 ptr", &fl, "key=1.5"},
		{"nil string ptr", (*string)(nil), ""},
		{"nil int64 ptr", (*int64)(nil), ""},
		{"nil time ptr", (*time.Time)(nil), ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := uricodec.Encode(c.val, "key", uricodec.FormExplode)
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			if got != c.want {
				t.Errorf("Encode() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestEncoder_Date(t *testing.T) {
	t.Parallel()

	d := time.Date(2023, 1, 18, 10, 4, 0, 0, time.UTC)
	got, err := uricodec.Encode(d, "d", uricodec.FormExplode)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if want := "d=2023-01-18T10%3A04%3A00Z"; got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestEncoder_DateTranscoderError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	tc := mocks.NewMockDateTranscoder(ctrl)
	wantErr := errors.New("bad date")
	tc.EXPECT().EncodeDate(gomock.Any()).Return("", wantErr)

	cfg := uricodec.Config{Style: uricodec.StyleForm, Explode: true, DateTranscoder: tc}
	_, err := uricodec.Encode(time.Now(), "d", cfg)
	if !errors.Is(err, wantErr) {
		t.Errorf("Encode() error = %v, want %v", err, wantErr)
	}
}

func TestEncoder_NestedInSingleValue(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	enc := mocks.NewMockEncodable(ctrl)
	enc.EXPECT().EncodeURI(gomock.Any()).DoAndReturn(func(e *uricodec.Encoder) error {
		if err := e.EncodeString("x"); err != nil {
			return err
		}
		return e.BeginField("f")
	})

	_, err := uricodec.Encode(enc, "key", uricodec.FormExplode)
	if diff := cmp.Diff(err, uricodec.ErrNestedInSingleValue, cmpopts.EquateErrors()); diff != "" {
		t.Errorf("Encode() error = %v, want %v", err, uricodec.ErrNestedInSingleValue)
	}
}

func TestEncoder_UnbalancedEnd(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	enc := mocks.NewMockEncodable(ctrl)
	enc.EXPECT().EncodeURI(gomock.Any()).DoAndReturn(func(e *uricodec.Encoder) error {
		return e.End()
	})

	_, err := uricodec.Encode(enc, "key", uricodec.FormExplode)
	if !errors.Is(err, uricodec.ErrInvalidArgument) {
		t.Errorf("Encode() error = %v, want %v", err, uricodec.ErrInvalidArgument)
	}
}

func TestEncoder_UnbalancedBegin(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	enc := mocks.NewMockEncodable(ctrl)
	enc.EXPECT().EncodeURI(gomock.Any()).DoAndReturn(func(e *uricodec.Encoder) error {
		return e.BeginField("f")
	})

	_, err := uricodec.Encode(enc, "key", uricodec.FormExplode)
	if !errors.Is(err, uricodec.ErrInvalidArgument) {
		t.Errorf("Encode() error = %v, want %v", err, uricodec.ErrInvalidArgument)
	}
}

func TestEncoder_AbsentFieldsDropped(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	enc := mocks.NewMockEncodable(ctrl)
	enc.EXPECT().EncodeURI(gomock.Any()).DoAndReturn(func(e *uricodec.Encoder) error {
		if err := e.BeginField("absent"); err != nil {
			return err
		}
		if err := e.EncodeNil(); err != nil {
			return err
		}
		if err := e.End(); err != nil {
			return err
		}
		if err := e.BeginField("present"); err != nil {
			return err
		}
		if err := e.EncodeString("x"); err != nil {
			return err
		}
		return e.End()
	})

	got, err := uricodec.Encode(enc, "key", uricodec.FormExplode)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if want := "present=x"; got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestEncoder_Uint64Boundary(t *testing.T) {
	t.Parallel()

	got, err := uricodec.Encode(uint64(1)<<63-1, "n", uricodec.FormExplode)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if want := "n=9223372036854775807"; got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}

	_, err = uricodec.Encode(uint64(1)<<63, "n", uricodec.FormExplode)
	if diff := cmp.Diff(err, uricodec.ErrIntegerOutOfRange, cmpopts.EquateErrors()); diff != "" {
		t.Errorf("Encode() error = %v, want %v", err, uricodec.ErrIntegerOutOfRange)
	}
}

func TestEncoder_MixedSlices(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		val  any
		want string
	}{
		{"bools", []bool{true, false}, "list=true,false"},
		{"ints", []int{1, 2, 3}, "list=1,2,3"},
		{"int64s", []int64{-1, 0}, "list=-1,0"},
		{"floats", []float64{1.5, -0.25}, "list=1.5,-0.25"},
		{"any", []any{"a", 1, true}, "list=a,1,true"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := uricodec.Encode(c.val, "list", uricodec.FormUnexplode)
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			if got != c.want {
				t.Errorf("Encode() = %q, want %q", got, c.want)
			}
		})
	}
}
