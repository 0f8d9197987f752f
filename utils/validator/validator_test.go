package validatorx_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/muhammadheryan/storefront-search/model"
	validatorx "github.com/muhammadheryan/storefront-search/utils/validator"
	"github.com/stretchr/testify/assert"
)

func TestValidateStruct_IndexItemRequest(t *testing.T) {
	tests := []struct {
		name     string
		itemCode string
		want     string
	}{
		{name: "valid", itemCode: "LAMP-1", want: ""},
		{name: "missing", itemCode: "", want: "ItemCode:required"},
		{name: "too long", itemCode: strings.Repeat("x", 141), want: "ItemCode:max"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := validatorx.ValidateStruct(&model.IndexItemRequest{ItemCode: tt.itemCode})
			assert.Equal(t, tt.want, validatorx.Describe(err))
		})
	}
}

func TestDescribe_PlainError(t *testing.T) {
	assert.Equal(t, "boom", validatorx.Describe(errors.New("boom")))
}
