package storage

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/spf13/viper"
)

type config struct {
	UsersTableName                *string
	PokerMatchesTableName         *string
	PokerRoundsTableName          *string
	UserPokerMatchesTableName     *string
	YahtzeeMatchesTableName       *string
	UserYahtzeeMatchesTableName   *string
	ApplicationEndpointsTableName *string
}

func loadConfig() config {
	viper.AutomaticEnv()
	viper.SetDefault("USERS_TABLE_NAME", "Users")
	viper.SetDefault("POKER_MATCHES_TABLE_NAME", "PokerMatches")
	viper.SetDefault("POKER_ROUNDS_TABLE_NAME", "PokerRounds")
	viper.SetDefault("USER_POKER_MATCHES_TABLE_NAME", "UserPokerMatches")
	viper.SetDefault("YAHTZEE_MATCHES_TABLE_NAME", "YahtzeeMatches")
	viper.SetDefault("USER_YAHTZEE_MATCHES_TABLE_NAME", "UserYahtzeeMatches")
	viper.SetDefault("APPLICATION_ENDPOINTS_TABLE_NAME", "ApplicationEndpoints")

	return config{
		UsersTableName:                aws.String(viper.GetString("USERS_TABLE_NAME")),
		PokerMatchesTableName:         aws.String(viper.GetString("POKER_MATCHES_TABLE_NAME")),
		PokerRoundsTableName:          aws.String(viper.GetString("POKER_ROUNDS_TABLE_NAME")),
		UserPokerMatchesTableName:     aws.String(viper.GetString("USER_POKER_MATCHES_TABLE_NAME")),
		YahtzeeMatchesTableName:       aws.String(viper.GetString("YAHTZEE_MATCHES_TABLE_NAME")),
		UserYahtzeeMatchesTableName:   aws.String(viper.GetString("USER_YAHTZEE_MATCHES_TABLE_NAME")),
		ApplicationEndpointsTableName: aws.String(viper.GetString("APPLICATION_ENDPOINTS_TABLE_NAME")),
	}
}
