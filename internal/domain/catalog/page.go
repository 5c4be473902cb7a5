package catalog

type Page struct {
	Skip  int `json:"skip"`
	Limit int `json:"limit"`
}

func (p Page) Valid() bool {
	return p.Skip >= 0 && p.Limit >= 1
}

// Window returns the [start, end) bounds of the page over n items.
func (p Page) Window(n int) (int, int) {
	if p.Skip >= n || n == 0 {
		return n, n
	}
	end := p.Skip + p.Limit
	if end > n || end < p.Skip {
		end = n
	}
	return p.Skip, end
}
