package tenant

import (
	"go-apg/internal/domain"

	"gorm.io/gorm"
)

// Access describes which business units a caller may see.
type Access struct {
	Role            string
	BusinessUnitIDs []int64
}

func (a Access) SeesAll() bool {
	return domain.SeesAllBusinessUnits(a.Role)
}

// Allows reports whether a record in businessUnitID is visible.
func (a Access) Allows(businessUnitID int64) bool {
	if a.SeesAll() {
		return true
	}
	for _, id := range a.BusinessUnitIDs {
		if id == businessUnitID {
			return true
		}
	}
	return false
}

// BusinessUnitScope restricts a query to the caller's business units. A caller
// with no business units sees nothing.
func BusinessUnitScope(access Access) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if access.SeesAll() {
			return db
		}
		if len(access.BusinessUnitIDs) == 0 {
			return db.Where("1 = 0")
		}
		return db.Where("business_unit_id IN ?", access.BusinessUnitIDs)
	}
}
