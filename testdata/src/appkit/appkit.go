package appkit

type NSCollectionViewItem struct{}

type UITableViewCell struct{}

//cells:identifier
type Item struct {
	NSCollectionViewItem
}

//cells:identifier
type Row struct{ UITableViewCell }

//reuseid:identifier
type Ignored struct{}
