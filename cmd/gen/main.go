package main

import (
	"ecocart/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.SupplierModel{},
		model.CategoryModel{},
		model.ProductModel{},
		model.SupplierListingModel{},
		model.DiscountModel{},
		model.ShoppingListModel{},
		model.ListShareModel{},
		model.ShoppingItemModel{},
		model.ContactModel{},
		model.UserDeviceModel{},
		model.ReminderLogModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
