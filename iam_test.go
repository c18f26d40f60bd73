package main

import (
	"encoding/json"
	"testing"

	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cloud-gaming-rig/internal/awspolicy"
)

func TestCreateIamResources_ScopedPasswordReadPolicy(t *testing.T) {
	m := &rigMocks{}
	err := runWithMocks(m, func(ctx *pulumi.Context) error {
		secret, err := createSecretResources(ctx, testConfig())
		if err != nil {
			return err
		}
		_, err = createIamResources(ctx, testConfig(), secret)
		return err
	})
	require.NoError(t, err)

	policies := m.byType("aws:iam/policy:Policy")
	require.Len(t, policies, 1)

	var doc awspolicy.Document
	require.NoError(t, json.Unmarshal([]byte(policies[0].Inputs["policy"].StringValue()), &doc))
	require.Len(t, doc.Statement, 1)
	assert.Equal(t, []string{"ssm:GetParameter"}, doc.Statement[0].Action)
	assert.Equal(t, []string{
		"arn:aws:ssm:us-east-1:123456789012:parameter/gaming-rig/administrator-password",
	}, doc.Statement[0].Resource)
}

func TestCreateIamResources_RoleTrustAndAttachments(t *testing.T) {
	m := &rigMocks{}
	err := runWithMocks(m, func(ctx *pulumi.Context) error {
		secret, err := createSecretResources(ctx, testConfig())
		if err != nil {
			return err
		}
		_, err = createIamResources(ctx, testConfig(), secret)
		return err
	})
	require.NoError(t, err)

	roles := m.byType("aws:iam/role:Role")
	require.Len(t, roles, 1)
	assert.Contains(t, roles[0].Inputs["assumeRolePolicy"].StringValue(), "ec2.amazonaws.com")

	attachments := m.byType("aws:iam/rolePolicyAttachment:RolePolicyAttachment")
	require.Len(t, attachments, 2)

	arns := make([]string, 0, len(attachments))
	for _, a := range attachments {
		arns = append(arns, a.Inputs["policyArn"].StringValue())
	}
	assert.Contains(t, arns, sharedBundlePolicyArn)
	assert.Contains(t, arns, "arn:aws:iam::123456789012:policy/gaming-rig-password-read")

	profiles := m.byType("aws:iam/instanceProfile:InstanceProfile")
	assert.Len(t, profiles, 1)
}
