package main

import (
	"sync"
	"time"

	"github.com/pulumi/pulumi/sdk/v3/go/common/resource"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
)

// rigMocks records every resource registration and provider call so tests
// can assert on what the program declared.
type rigMocks struct {
	mu        sync.Mutex
	resources []pulumi.MockResourceArgs
	calls     []pulumi.MockCallArgs
}

func (m *rigMocks) NewResource(args pulumi.MockResourceArgs) (string, resource.PropertyMap, error) {
	m.mu.Lock()
	m.resources = append(m.resources, args)
	m.mu.Unlock()

	state := resource.PropertyMap{}
	for k, v := range args.Inputs {
		state[k] = v
	}
	switch args.TypeToken {
	case "random:index/randomPassword:RandomPassword":
		state["result"] = resource.NewStringProperty("aaaabbbbccccddddeeeeffffgggghhhh")
	case "aws:ssm/parameter:Parameter":
		state["arn"] = resource.NewStringProperty(
			"arn:aws:ssm:us-east-1:123456789012:parameter" + args.Inputs["name"].StringValue())
	case "aws:iam/policy:Policy":
		state["arn"] = resource.NewStringProperty("arn:aws:iam::123456789012:policy/" + args.Name)
	case "aws:ec2/spotInstanceRequest:SpotInstanceRequest":
		state["spotInstanceId"] = resource.NewStringProperty("i-0123456789abcdef0")
		state["publicIp"] = resource.NewStringProperty("198.51.100.10")
		state["publicDns"] = resource.NewStringProperty("ec2-198-51-100-10.compute-1.amazonaws.com")
	}
	return args.Name + "_id", state, nil
}

func (m *rigMocks) Call(args pulumi.MockCallArgs) (resource.PropertyMap, error) {
	m.mu.Lock()
	m.calls = append(m.calls, args)
	m.mu.Unlock()

	switch args.Token {
	case "aws:ec2/getAmi:getAmi":
		return resource.PropertyMap{
			"id": resource.NewStringProperty("ami-0catalog111111111"),
		}, nil
	case "aws:index/getAvailabilityZones:getAvailabilityZones":
		return resource.PropertyMap{
			"names": resource.NewArrayProperty([]resource.PropertyValue{
				resource.NewStringProperty("us-east-1a"),
				resource.NewStringProperty("us-east-1b"),
				resource.NewStringProperty("us-east-1c"),
			}),
		}, nil
	}
	return args.Args, nil
}

func (m *rigMocks) byType(typeToken string) []pulumi.MockResourceArgs {
	m.mu.Lock()
	defer m.mu.Unlock()

	var matched []pulumi.MockResourceArgs
	for _, r := range m.resources {
		if r.TypeToken == typeToken {
			matched = append(matched, r)
		}
	}
	return matched
}

func (m *rigMocks) callCount(token string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, c := range m.calls {
		if c.Token == token {
			n++
		}
	}
	return n
}

// runWithMocks drives a component function under the mock monitor.
func runWithMocks(m *rigMocks, f pulumi.RunFunc) error {
	return pulumi.RunErr(f, pulumi.WithMocks("cloud-gaming-rig", "test", m))
}

func testConfig() *rigConfig {
	return &rigConfig{
		region:             "us-east-1",
		namePrefix:         "gaming-rig",
		instanceType:       "g4dn.xlarge",
		rootVolumeSizeGb:   120,
		fulfillmentTimeout: 10 * time.Minute,
	}
}
