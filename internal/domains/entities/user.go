package entities

// RoleAdmin marks household administrators. Administrators are exempt
// from the reward policy: they neither earn match points nor receive
// penalty records.
const RoleAdmin = "admin"

type User struct {
	Id       string `dynamodbav:"Id"`
	Username string `dynamodbav:"Username"`
	Role     string `dynamodbav:"Role"`
}

func (u User) Exempt() bool {
	return u.Role == RoleAdmin
}
