package user

type User struct {
	ID           int64
	Name         string
	Username     string
	Email        string
	PasswordHash string
	RoleCode     RoleCode
}

type ListFilter struct {
	RoleCode *RoleCode
}
