package main

import (
	"github.com/pulumi/pulumi-aws/sdk/v5/go/aws/ec2"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"cloud-gaming-rig/internal/userdata"
)

// InstanceResources holds the spot request that materializes the gaming rig
type InstanceResources struct {
	spotRequest *ec2.SpotInstanceRequest
}

// resolveAmi returns the image the instance boots from. An explicit override
// always wins; otherwise the most recent Windows Server base image is looked
// up in the catalog.
func resolveAmi(ctx *pulumi.Context, cfg *rigConfig) (string, error) {
	if cfg.customAmi != "" {
		return cfg.customAmi, nil
	}

	// Get the latest Windows Server 2019 base AMI
	ami, err := ec2.LookupAmi(ctx, &ec2.LookupAmiArgs{
		Owners:     []string{"amazon"},
		MostRecent: pulumi.BoolRef(true),
		Filters: []ec2.GetAmiFilter{
			{
				Name:   "name",
				Values: []string{"Windows_Server-2019-English-Full-Base-*"},
			},
			{
				Name:   "root-device-type",
				Values: []string{"ebs"},
			},
			{
				Name:   "virtualization-type",
				Values: []string{"hvm"},
			},
		},
	})
	if err != nil {
		return "", err
	}
	return ami.Id, nil
}

// createInstanceResources issues the one-time spot request for the gaming
// instance. The create timeout bounds the wait for fulfillment.
func createInstanceResources(ctx *pulumi.Context, cfg *rigConfig, zoneName string,
	security *SecurityResources, identity *IamResources, secret *SecretResources) (*InstanceResources, error) {

	amiId, err := resolveAmi(ctx, cfg)
	if err != nil {
		return nil, err
	}

	script, err := userdata.Render(userdata.Params{
		SkipInstall:           cfg.skipInstall,
		Region:                cfg.region,
		PasswordParameterName: secret.parameterName,
		Flags:                 cfg.flags,
	})
	if err != nil {
		return nil, err
	}

	args := &ec2.SpotInstanceRequestArgs{
		Ami:                 pulumi.String(amiId),
		InstanceType:        pulumi.String(cfg.instanceType),
		AvailabilityZone:    pulumi.String(zoneName),
		SpotType:            pulumi.String("one-time"),
		WaitForFulfillment:  pulumi.Bool(true),
		VpcSecurityGroupIds: pulumi.StringArray{security.group.ID()},
		IamInstanceProfile:  identity.instanceProfile.Name,
		RootBlockDevice: &ec2.SpotInstanceRequestRootBlockDeviceArgs{
			VolumeSize: pulumi.Int(cfg.rootVolumeSizeGb),
			VolumeType: pulumi.String("gp3"),
		},
		Tags: pulumi.StringMap{
			"Name": pulumi.String(cfg.namePrefix),
		},
	}
	if script != "" {
		args.UserData = pulumi.String(script)
	}

	spotRequest, err := ec2.NewSpotInstanceRequest(ctx, cfg.namePrefix, args,
		pulumi.Timeouts(&pulumi.CustomTimeouts{Create: cfg.fulfillmentTimeout.String()}))
	if err != nil {
		return nil, err
	}

	return &InstanceResources{spotRequest: spotRequest}, nil
}
