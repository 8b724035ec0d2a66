package domain

type CtxKey string

const (
	KeyUserID    CtxKey = "UserID"
	KeyUserEmail CtxKey = "Email"
	KeyUserName  CtxKey = "Name"
	KeyUserRole  CtxKey = "Role"
)
