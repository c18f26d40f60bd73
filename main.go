package main

import (
	"math/rand/v2"
	"time"

	"github.com/pulumi/pulumi-aws/sdk/v5/go/aws"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"cloud-gaming-rig/internal/callerip"
	"cloud-gaming-rig/internal/rules"
	"cloud-gaming-rig/internal/zone"
)

func main() {
	pulumi.Run(func(ctx *pulumi.Context) error {
		cfg, err := loadConfig(ctx)
		if err != nil {
			return err
		}

		// 1. Flatten the ingress rule table before anything reaches the provider
		flat, err := rules.Flatten(rules.DefaultTable())
		if err != nil {
			return err
		}

		// 2. Resolve the caller's public IP for ingress scoping
		resolver := callerip.New()
		resolver.Endpoint = cfg.callerIPEndpoint
		callerIP, err := resolver.Resolve(ctx.Context())
		if err != nil {
			return err
		}
		_ = ctx.Log.Info("caller public IP resolved to "+callerIP, nil)

		// 3. Pick the availability zone the instance lands in
		available, err := aws.GetAvailabilityZones(ctx, &aws.GetAvailabilityZonesArgs{
			State: pulumi.StringRef("available"),
		})
		if err != nil {
			return err
		}
		seed := uint64(time.Now().UnixNano())
		rng := rand.New(rand.NewPCG(seed, seed))
		zoneName, err := zone.Select(rng, cfg.region, cfg.allowedZoneSuffixes, available.Names)
		if err != nil {
			return err
		}
		_ = ctx.Log.Info("placing instance in "+zoneName, nil)

		// 4. Generate and register the administrator credential
		secretResources, err := createSecretResources(ctx, cfg)
		if err != nil {
			return err
		}

		// 5. Bind the instance identity to the credential and bundle buckets
		iamResources, err := createIamResources(ctx, cfg, secretResources)
		if err != nil {
			return err
		}

		// 6. Create the security group and caller-scoped ingress rules
		securityResources, err := createSecurityResources(ctx, cfg, callerip.SingleAddrCIDR(callerIP), flat)
		if err != nil {
			return err
		}

		// 7. Request the spot instance
		instanceResources, err := createInstanceResources(ctx, cfg, zoneName,
			securityResources, iamResources, secretResources)
		if err != nil {
			return err
		}

		// Export instance connection details
		ctx.Export("instanceId", instanceResources.spotRequest.SpotInstanceId)
		ctx.Export("instanceIp", instanceResources.spotRequest.PublicIp)
		ctx.Export("instancePublicDns", instanceResources.spotRequest.PublicDns)
		ctx.Export("spotRequestId", instanceResources.spotRequest.ID())
		ctx.Export("instancePassword", pulumi.ToSecret(secretResources.password.Result))

		return nil
	})
}
