package catalog

import "go.mongodb.org/mongo-driver/bson/primitive"

// ServiceCategory is a top-level service vertical with its nested subcategories.
// Overview and FAQ are stored as free-form documents maintained by admins, so
// they pass through untyped.
type ServiceCategory struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ServiceName     string             `bson:"serviceName" json:"serviceName"`
	Icon            string             `bson:"icon,omitempty" json:"icon,omitempty"`
	SubCategories   []SubCategory      `bson:"subCategories,omitempty" json:"subCategories,omitempty"`
	ServiceOverview interface{}        `bson:"serviceOverview,omitempty" json:"serviceOverview,omitempty"`
	FAQ             interface{}        `bson:"faq,omitempty" json:"faq,omitempty"`
}

// SubCategory is one bookable service under a category.
type SubCategory struct {
	ID          string `bson:"id" json:"id"`
	ServiceName string `bson:"serviceName,omitempty" json:"serviceName,omitempty"`
	Image       string `bson:"image,omitempty" json:"image,omitempty"`
}

// CategorySummary is the projected list entry returned by the catalog listing.
type CategorySummary struct {
	ID           primitive.ObjectID `bson:"_id" json:"_id"`
	ServiceName  string             `bson:"serviceName" json:"serviceName"`
	Icon         string             `bson:"icon,omitempty" json:"icon,omitempty"`
	TotalService int                `json:"totalService"`
}

// Summary projects the category into its listing form.
func (c *ServiceCategory) Summary() CategorySummary {
	return CategorySummary{
		ID:           c.ID,
		ServiceName:  c.ServiceName,
		Icon:         c.Icon,
		TotalService: len(c.SubCategories),
	}
}

// FindSubCategory returns the subcategory with the given id, or nil.
func (c *ServiceCategory) FindSubCategory(id string) *SubCategory {
	for i := range c.SubCategories {
		if c.SubCategories[i].ID == id {
			return &c.SubCategories[i]
		}
	}
	return nil
}
