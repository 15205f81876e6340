package cells

type UITableViewCell struct{}

type UICollectionViewCell struct{}

type UICollectionReusableView struct{}

type UIView struct{}

//reuseid:identifier
type FeedCell struct {
	UITableViewCell
	title string
}

//reuseid:identifier
type PhotoCell struct {
	*UICollectionViewCell
}

type (
	//reuseid:identifier
	SectionHeader struct {
		UIView
		UICollectionReusableView
	}
)

//reuseid:identifier
type Banner struct { // want "This macro can only be applied to UITableViewCell, UICollectionViewCell or UICollectionReusableView"
	UIView
}

//reuseid:identifier
type Empty struct{} // want "This macro can only be applied to UITableViewCell, UICollectionViewCell or UICollectionReusableView"

//reuseid:identifier
type Style int // want "This macro can only be applied to class declarations."

//reuseid:identifier
type Reusable interface { // want "This macro can only be applied to class declarations."
	Reuse()
}

//reuseid:identifier
type Legacy = FeedCell // want "This macro can only be applied to class declarations."

//reuseid:identifier
func register() {} // want "This macro can only be applied to class declarations."

func setup() {
	//reuseid:identifier
	type local struct {
		UITableViewCell
	}

	//reuseid:identifier
	type localStyle int

	_, _ = local{}, localStyle(0)
}

// Plain is not annotated and never reported.
type Plain struct{}
