package page

import "github.com/dmitrymomot/pagekit/modules/signup"

type emptyRequest struct{}

type actionRequest struct {
	Action string `path:"action"`
}

type targetRequest struct {
	ID string `path:"id"`
}

type optionRequest struct {
	Option string `path:"option"`
	Key    string `query:"key"`
}

// inputRequest carries the whole form; Field names the input that changed.
type inputRequest struct {
	Field    string `query:"field"`
	Name     string `form:"name"`
	Email    string `form:"email"`
	Password string `form:"password"`
	Confirm  string `form:"confirm-password"`
}

func (r inputRequest) values() signup.Values {
	return signup.Values{Name: r.Name, Email: r.Email, Password: r.Password, Confirm: r.Confirm}
}
