package main

import (
	"errors"
	"fmt"

	"github.com/pulumi/pulumi-aws/sdk/v5/go/aws/iam"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"cloud-gaming-rig/internal/awspolicy"
)

// sharedBundlePolicyArn is the pre-existing managed policy granting read
// access to the shared software bundle buckets (graphics drivers). It is
// attached as-is, never authored here.
const sharedBundlePolicyArn = "arn:aws:iam::aws:policy/AmazonS3ReadOnlyAccess"

var errPolicyBinding = errors.New("failed to bind policy to instance role")

// IamResources holds the identity the instance runs under
type IamResources struct {
	role            *iam.Role
	instanceProfile *iam.InstanceProfile
}

// createIamResources creates the instance role, its policy attachments,
// and the instance profile. A failed attachment aborts the run naming the
// attachment that failed.
func createIamResources(ctx *pulumi.Context, cfg *rigConfig, secret *SecretResources) (*IamResources, error) {
	trust, err := awspolicy.Trust("ec2.amazonaws.com").JSON()
	if err != nil {
		return nil, err
	}

	// Create the instance role, assumable only by the compute service
	role, err := iam.NewRole(ctx, cfg.namePrefix+"-role", &iam.RoleArgs{
		AssumeRolePolicy: pulumi.String(trust),
		Tags: pulumi.StringMap{
			"Name": pulumi.String(cfg.namePrefix + "-role"),
		},
	})
	if err != nil {
		return nil, err
	}

	// One action on one resource: read the password parameter, nothing else
	passwordReadPolicy, err := iam.NewPolicy(ctx, cfg.namePrefix+"-password-read", &iam.PolicyArgs{
		Description: pulumi.String("Read access to the administrator password parameter"),
		Policy: secret.parameter.Arn.ApplyT(func(arn string) (string, error) {
			return awspolicy.Scoped("ssm:GetParameter", arn).JSON()
		}).(pulumi.StringOutput),
	})
	if err != nil {
		return nil, err
	}

	_, err = iam.NewRolePolicyAttachment(ctx, "password-read-attachment", &iam.RolePolicyAttachmentArgs{
		Role:      role.Name,
		PolicyArn: passwordReadPolicy.Arn,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: password-read-attachment: %w", errPolicyBinding, err)
	}

	_, err = iam.NewRolePolicyAttachment(ctx, "bundle-read-attachment", &iam.RolePolicyAttachmentArgs{
		Role:      role.Name,
		PolicyArn: pulumi.String(sharedBundlePolicyArn),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: bundle-read-attachment: %w", errPolicyBinding, err)
	}

	// Wrap the role so the instance reconciler can consume it
	instanceProfile, err := iam.NewInstanceProfile(ctx, cfg.namePrefix+"-instance-profile", &iam.InstanceProfileArgs{
		Role: role.Name,
	})
	if err != nil {
		return nil, err
	}

	return &IamResources{
		role:            role,
		instanceProfile: instanceProfile,
	}, nil
}
