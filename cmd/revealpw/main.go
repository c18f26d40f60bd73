// revealpw prints the administrator password the stack registered in
// Parameter Store. The stack output is secret-flagged, so this command is the
// deliberate read path for the raw value.
package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alecthomas/kong"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	ssmtypes "github.com/aws/aws-sdk-go-v2/service/ssm/types"
)

var cli struct {
	Prefix  string        `help:"Resource name prefix the stack was deployed with." default:"gaming-rig"`
	Name    string        `help:"Full parameter name, overriding the prefix-derived default." optional:""`
	Region  string        `help:"AWS region of the parameter. Defaults to the SDK region chain."`
	Timeout time.Duration `help:"Request timeout." default:"10s"`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("revealpw"),
		kong.Description("Print the gaming rig administrator password."),
	)
	kctx.FatalIfErrorf(run())
}

func run() error {
	ctx, cancel := context.WithTimeout(context.Background(), cli.Timeout)
	defer cancel()

	name := parameterName(cli.Prefix, cli.Name)

	var optFns []func(*awsconfig.LoadOptions) error
	if cli.Region != "" {
		optFns = append(optFns, awsconfig.WithRegion(cli.Region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, optFns...)
	if err != nil {
		return fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	out, err := ssm.NewFromConfig(cfg).GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		var notFound *ssmtypes.ParameterNotFound
		if errors.As(err, &notFound) {
			return fmt.Errorf("parameter %s does not exist, has the stack been deployed?", name)
		}
		return fmt.Errorf("failed to read parameter %s: %w", name, err)
	}

	fmt.Println(aws.ToString(out.Parameter.Value))
	return nil
}

// parameterName mirrors the name the stack stores the password under.
func parameterName(prefix, explicit string) string {
	if explicit != "" {
		return explicit
	}
	return "/" + prefix + "/administrator-password"
}
