package solution

type SuggestSolutionInput struct {
	Title       string `json:"title" form:"title" binding:"required,max=200"`
	Description string `json:"description" form:"description" binding:"required"`
	Confidence  *int   `json:"-" form:"-"`
}
