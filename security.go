package main

import (
	"github.com/pulumi/pulumi-aws/sdk/v5/go/aws/ec2"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"cloud-gaming-rig/internal/rules"
)

// SecurityResources holds the instance security group
type SecurityResources struct {
	group *ec2.SecurityGroup
}

// createSecurityResources creates the security group and one rule resource
// per flattened table entry, every ingress scoped to the caller's /32
func createSecurityResources(ctx *pulumi.Context, cfg *rigConfig, callerCidr string, flat []rules.Rule) (*SecurityResources, error) {
	// Create the security group in the default VPC
	group, err := ec2.NewSecurityGroup(ctx, cfg.namePrefix+"-sg", &ec2.SecurityGroupArgs{
		Description: pulumi.String("Gaming instance access for the provisioning caller"),
		Tags: pulumi.StringMap{
			"Name": pulumi.String(cfg.namePrefix + "-sg"),
		},
	})
	if err != nil {
		return nil, err
	}

	// One ingress rule per table entry, named by its key
	for _, rule := range flat {
		_, err := ec2.NewSecurityGroupRule(ctx, rule.Key, &ec2.SecurityGroupRuleArgs{
			Type:            pulumi.String("ingress"),
			Protocol:        pulumi.String(rule.Protocol),
			FromPort:        pulumi.Int(rule.Port),
			ToPort:          pulumi.Int(rule.Port),
			CidrBlocks:      pulumi.StringArray{pulumi.String(callerCidr)},
			SecurityGroupId: group.ID(),
			Description:     pulumi.String(rule.Description),
		})
		if err != nil {
			return nil, err
		}
	}

	// Catch-all egress, always present and never keyed by the table
	_, err = ec2.NewSecurityGroupRule(ctx, "egress-all", &ec2.SecurityGroupRuleArgs{
		Type:            pulumi.String("egress"),
		Protocol:        pulumi.String("-1"),
		FromPort:        pulumi.Int(0),
		ToPort:          pulumi.Int(0),
		CidrBlocks:      pulumi.StringArray{pulumi.String("0.0.0.0/0")},
		SecurityGroupId: group.ID(),
		Description:     pulumi.String("Allow all outbound traffic"),
	})
	if err != nil {
		return nil, err
	}

	return &SecurityResources{group: group}, nil
}
