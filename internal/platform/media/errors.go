package media

import (
	"errors"

	iamtypes "github.com/aws/aws-sdk-go-v2/service/iam/types"
	mltypes "github.com/aws/aws-sdk-go-v2/service/medialive/types"
	mptypes "github.com/aws/aws-sdk-go-v2/service/mediapackage/types"
	"github.com/aws/smithy-go"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("resource not found")

// notFoundCodes are the API error codes the services use for missing resources.
var notFoundCodes = []string{
	"NotFoundException", // MediaLive, MediaPackage
	"NoSuchEntity",      // IAM
}

// IsNotFound checks if an error indicates a resource was not found.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrNotFound) {
		return true
	}

	// Check for typed errors first
	var mlNotFound *mltypes.NotFoundException
	if errors.As(err, &mlNotFound) {
		return true
	}
	var mpNotFound *mptypes.NotFoundException
	if errors.As(err, &mpNotFound) {
		return true
	}
	if isNoSuchEntity(err) {
		return true
	}

	return isAPIErrorCode(err, notFoundCodes...)
}

// isNoSuchEntity checks if an IAM error indicates a missing entity.
func isNoSuchEntity(err error) bool {
	var nse *iamtypes.NoSuchEntityException
	return errors.As(err, &nse)
}

// IsConflict checks if an error indicates the resource is in a state that rejects the request.
func IsConflict(err error) bool {
	var conflict *mltypes.ConflictException
	if errors.As(err, &conflict) {
		return true
	}
	return isAPIErrorCode(err, "ConflictException")
}

// isAPIErrorCode checks if the error is a smithy API error with one of the given codes.
func isAPIErrorCode(err error, codes ...string) bool {
	if err == nil {
		return false
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		for _, code := range codes {
			if apiErr.ErrorCode() == code {
				return true
			}
		}
	}
	return false
}
