package media

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/iam"
)

// GetRoleARN returns the ARN of the named IAM role.
func (c *RealClient) GetRoleARN(ctx context.Context, name string) (string, error) {
	out, err := c.iam.GetRole(ctx, &iam.GetRoleInput{RoleName: aws.String(name)})
	if err != nil {
		if isNoSuchEntity(err) {
			return "", fmt.Errorf("role %s: %w", name, ErrNotFound)
		}
		return "", fmt.Errorf("failed to get role %s: %w", name, err)
	}
	if out.Role == nil {
		return "", fmt.Errorf("role %s: %w", name, ErrNotFound)
	}
	return aws.ToString(out.Role.Arn), nil
}
