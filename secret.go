package main

import (
	"github.com/pulumi/pulumi-aws/sdk/v5/go/aws/ssm"
	"github.com/pulumi/pulumi-random/sdk/v4/go/random"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
)

// SecretResources holds the generated administrator credential and its
// Parameter Store registration
type SecretResources struct {
	password      *random.RandomPassword
	parameter     *ssm.Parameter
	parameterName string
}

// createSecretResources generates the administrator password and stores it
// encrypted under a stable parameter name. The generated value lives in
// stack state and survives re-runs unless the generation parameters change.
func createSecretResources(ctx *pulumi.Context, cfg *rigConfig) (*SecretResources, error) {
	parameterName := "/" + cfg.namePrefix + "/administrator-password"

	// 32 alphanumeric characters, no symbol class
	password, err := random.NewRandomPassword(ctx, "administrator-password", &random.RandomPasswordArgs{
		Length:  pulumi.Int(32),
		Special: pulumi.Bool(false),
	})
	if err != nil {
		return nil, err
	}

	// Store the password as a SecureString parameter
	parameter, err := ssm.NewParameter(ctx, "administrator-password-param", &ssm.ParameterArgs{
		Name:  pulumi.String(parameterName),
		Type:  pulumi.String("SecureString"),
		Value: password.Result,
		Tags: pulumi.StringMap{
			"Name": pulumi.String(cfg.namePrefix + "-administrator-password"),
		},
	})
	if err != nil {
		return nil, err
	}

	return &SecretResources{
		password:      password,
		parameter:     parameter,
		parameterName: parameterName,
	}, nil
}
