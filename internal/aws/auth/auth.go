package auth

import (
	"fmt"

	"github.com/aws/aws-lambda-go/events"
)

// UserId extracts the acting user from API Gateway JWT-authorizer
// claims. Token verification itself happens upstream; the engine only
// trusts the already-validated subject.
func UserId(request events.APIGatewayV2HTTPRequest) (string, error) {
	authorizer := request.RequestContext.Authorizer
	if authorizer == nil || authorizer.JWT == nil {
		return "", fmt.Errorf("no authorizer")
	}
	sub, ok := authorizer.JWT.Claims["sub"]
	if !ok || sub == "" {
		return "", fmt.Errorf("no sub claim")
	}
	return sub, nil
}
