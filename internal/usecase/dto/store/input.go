package storedto

type StoreInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Banner      string `json:"banner"`
	Location    string `json:"location"`
}
