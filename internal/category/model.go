package category

const (
	DefaultColor = "bg-blue-500"
	DefaultIcon  = "ri-folder-line"
)

// Category groups dishes on the menu. DishCount is a display counter set by hand; the
// derived count per category lives in the report package.
type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	Icon      string `json:"icon"`
	DishCount int    `json:"dish_count"`
}

type CategoryInput struct {
	Name      string
	Color     string
	Icon      string
	DishCount int
}
