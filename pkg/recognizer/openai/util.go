package openai

import (
	"errors"

	"github.com/openai/openai-go/v3"
)

func convertError(err error) error {
	var apierr *openai.Error

	if errors.As(err, &apierr) && apierr.Message != "" {
		return errors.New(apierr.Message)
	}

	return err
}
