package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// ArtPrint represents a print offered in the catalog.
type ArtPrint struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title" validate:"required,min=1,max=200"`
	Artist      string             `bson:"artist" json:"artist" validate:"required,min=1,max=100"`
	Description string             `bson:"description" json:"description" validate:"omitempty,max=1000"`
	Price       float64            `bson:"price" json:"price" validate:"gte=0"`
	Size        string             `bson:"size" json:"size"`
	ImageURL    string             `bson:"image_url" json:"image_url" validate:"omitempty,url"`
	Tags        []string           `bson:"tags" json:"tags"`
	InStock     *bool              `bson:"in_stock,omitempty" json:"in_stock,omitempty"`
	Featured    bool               `bson:"featured" json:"featured"`
}

// Available reports whether the print can be ordered. A stored document
// without an in_stock field counts as available.
func (p *ArtPrint) Available() bool {
	return p.InStock == nil || *p.InStock
}
