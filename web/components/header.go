package components

// UserType selects the header's link set
type UserType string

const (
	UserVendor   UserType = "vendor"
	UserSupplier UserType = "supplier"
)

// NavLink is one header navigation entry
type NavLink struct {
	Href   string
	Label  string
	Icon   string
	Active bool
}

// Header is the view model of the sticky page header
type Header struct {
	UserType      UserType
	UserName      string
	Links         []NavLink
	Notifications int
}

var (
	vendorLinks = []NavLink{
		{Href: "/", Label: "Home", Icon: "store"},
		{Href: "/vendor", Label: "Dashboard", Icon: "store"},
		{Href: "/vendor/suppliers", Label: "Suppliers", Icon: "users"},
		{Href: "/group-buyers", Label: "Group Buying", Icon: "shopping-cart"},
	}
	supplierLinks = []NavLink{
		{Href: "/supplier", Label: "Dashboard", Icon: "store"},
		{Href: "/supplier/products", Label: "Products", Icon: "shopping-cart"},
		{Href: "/supplier/group-buys", Label: "Group Buy Requests", Icon: "users"},
		{Href: "/supplier/analytics", Label: "Analytics", Icon: "users"},
	}
)

// NewHeader builds the header for userType, marking the link whose href
// equals currentPath as active
func NewHeader(userType UserType, currentPath, userName string, notifications int) Header {
	src := vendorLinks
	if userType == UserSupplier {
		src = supplierLinks
	}

	links := make([]NavLink, len(src))
	for i, l := range src {
		l.Active = l.Href == currentPath
		links[i] = l
	}
	return Header{
		UserType:      userType,
		UserName:      userName,
		Links:         links,
		Notifications: notifications,
	}
}

// LinkClass returns the nav link classes
func (l NavLink) LinkClass() string {
	if l.Active {
		return "bg-primary/10 text-primary"
	}
	return "text-muted-foreground hover:text-foreground hover:bg-accent"
}
