package seedfile

// Config is the root of the seed YAML file: a list of collections to
// import at startup.
type Config struct {
	Collections []Collection `yaml:"collections"`
}

// Collection declares one mark and the bookmarks it should contain.
type Collection struct {
	Mark      string  `yaml:"mark"`
	Bookmarks []Entry `yaml:"bookmarks"`
}

// Entry is one bookmark declaration. Category defaults to the store's
// default category when omitted.
type Entry struct {
	URL         string `yaml:"url"`
	Title       string `yaml:"title"`
	Category    string `yaml:"category"`
	Description string `yaml:"description"`
}
