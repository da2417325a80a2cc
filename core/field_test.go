package core

import (
	"errors"
	"testing"
	"time"
)

func TestField_StringValue(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		want  string
	}{
		{
			name:  "String field",
			field: Field{Type: StringType, Str: "hello"},
			want:  "hello",
		},
		{
			name:  "Int field",
			field: Field{Type: IntType, Int64: 42},
			want:  "42",
		},
		{
			name:  "Bool field (true)",
			field: Field{Type: BoolType, Int64: 1},
			want:  "true",
		},
		{
			name:  "Float64 field",
			field: Field{Type: Float64Type, Float64: 3.14},
			want:  "3.14",
		},
		{
			name:  "Duration field",
			field: Field{Type: DurationType, Int64: int64(5 * time.Second)},
			want:  "5s",
		},
		{
			name:  "Error field",
			field: Field{Type: ErrorType, Str: "an error occurred"},
			want:  "an error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.field.StringValue(); got != tt.want {
				t.Errorf("Field.StringValue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFields(t *testing.T) {
	err := errors.New("disk full")
	ctx := Fields(
		Field{Key: "count", Type: IntType, Int64: 3},
		Field{Key: "ok", Type: BoolType, Int64: 1},
		Field{Key: ExceptionKey, Type: ErrorType, Str: err.Error(), Any: err},
		Field{Key: "count", Type: IntType, Int64: 4},
	)

	if ctx["count"] != 4 {
		t.Errorf("Expected last duplicate to win, got: %v", ctx["count"])
	}
	if ctx["ok"] != true {
		t.Errorf("Expected bool value, got: %v", ctx["ok"])
	}
	if ctx[ExceptionKey] != err {
		t.Errorf("Expected the original error to be kept, got: %v", ctx[ExceptionKey])
	}
}
