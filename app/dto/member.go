package dto

type MemberRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type MemberResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}
