package ledger

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/spf13/viper"
)

// Client posts point credits and penalty records to the surrounding
// app's ledger function. The engine only emits these events; the
// ledger owns balances and penalty bookkeeping.
type Client struct {
	lambda *lambda.Client
	cfg    config
}

type config struct {
	LedgerFunctionArn *string
}

func NewClient(lambdaClient *lambda.Client) *Client {
	return &Client{
		lambda: lambdaClient,
		cfg:    loadConfig(),
	}
}

func loadConfig() config {
	viper.AutomaticEnv()
	return config{
		LedgerFunctionArn: aws.String(viper.GetString("LEDGER_FUNCTION_ARN")),
	}
}
