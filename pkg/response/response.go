// Package response writes the fixed JSON envelopes of the user API:
// {result:true,user:{...}}, {result:true,users:[...]} and
// {result:false,error:"..."}.
package response

import "github.com/gin-gonic/gin"

type userBody struct {
	Result bool `json:"result"`
	User   any  `json:"user"`
}

type listBody struct {
	Result bool `json:"result"`
	Users  any  `json:"users"`
}

type errorBody struct {
	Result bool   `json:"result"`
	Error  string `json:"error"`
}

func User(c *gin.Context, status int, u any) {
	c.JSON(status, userBody{Result: true, User: u})
}

// Users expects a non-nil slice so an empty page still serializes as [].
func Users(c *gin.Context, status int, list any) {
	c.JSON(status, listBody{Result: true, Users: list})
}

func Err(c *gin.Context, status int, msg string) {
	c.JSON(status, errorBody{Result: false, Error: msg})
}

// AbortErr is the middleware variant of Err; it stops the handler chain.
func AbortErr(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, errorBody{Result: false, Error: msg})
}
