package entities

// UserMatch indexes a player's single active match of one game type.
// The row exists exactly while the match is active.
type UserMatch struct {
	UserId  string `dynamodbav:"UserId"`
	MatchId string `dynamodbav:"MatchId"`
}

// ApplicationEndpoint maps a user to the push endpoint turn
// notifications publish to.
type ApplicationEndpoint struct {
	UserId      string `dynamodbav:"UserId"`
	EndpointArn string `dynamodbav:"EndpointArn"`
}
