// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-dni-gateway/models"
	"github.com/stretchr/testify/assert"
)

func TestLookupValidator_DNI(t *testing.T) {
	tests := []struct {
		dni     string
		wantErr bool
	}{
		{"12345678", false},
		{"00000000", false},
		{"1234567", true},
		{"123456789", true},
		{"1234567a", true},
		{" 12345678", true},
		{"", true},
	}

	v := NewLookupValidator()
	for _, tt := range tests {
		t.Run(tt.dni, func(t *testing.T) {
			err := v.Validate(context.Background(), models.DNIQuery{DNI: tt.dni})
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDNI)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLookupValidator_Name(t *testing.T) {
	v := NewLookupValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, &models.NameQuery{Nombres: "ANA", ApPat: "QUISPE", ApMat: "MAMANI"}))
	assert.ErrorIs(t, v.Validate(ctx, models.NameQuery{Nombres: "ANA", ApPat: "QUISPE"}), ErrEmptyNameQuery)
	assert.ErrorIs(t, v.Validate(ctx, models.NameQuery{}), ErrEmptyNameQuery)
}

func TestLookupValidator_Rejects(t *testing.T) {
	v := NewLookupValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, "12345678"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, models.DNIQuery{DNI: "12345678"}, "dni"), ErrUnknownField)
}
