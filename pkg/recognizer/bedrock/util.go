package bedrock

import (
	"errors"

	"github.com/aws/smithy-go"
)

func convertError(err error) error {
	var apierr smithy.APIError

	if errors.As(err, &apierr) {
		return errors.New(apierr.ErrorCode() + ": " + apierr.ErrorMessage())
	}

	return err
}
