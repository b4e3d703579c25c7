package element

// Role is the relation an element holds to the user's menh.
type Role uint8

const (
	RoleSinh     Role = iota // generates menh
	RoleCung                 // same as menh
	RoleBiKhac               // menh overcomes it
	RoleKhac                 // overcomes menh
	RoleSinhXuat             // menh generates it
)

var roleNames = [Count]string{"sinh", "cung", "bi_khac", "khac", "sinh_xuat"}

func (r Role) String() string {
	if r >= Count {
		return "unknown"
	}
	return roleNames[r]
}

// Roles is the role quintuple for one menh.
type Roles struct {
	Generates  Element // sinh
	SameAs     Element // cung
	WeakenedBy Element // bi khac
	OvercomeBy Element // khac
	Overcomes  Element // sinh xuat
}

var rolesTable = [Count]Roles{
	Metal: {Generates: Earth, SameAs: Metal, WeakenedBy: Wood, OvercomeBy: Fire, Overcomes: Water},
	Wood:  {Generates: Water, SameAs: Wood, WeakenedBy: Earth, OvercomeBy: Metal, Overcomes: Fire},
	Water: {Generates: Metal, SameAs: Water, WeakenedBy: Fire, OvercomeBy: Earth, Overcomes: Wood},
	Fire:  {Generates: Wood, SameAs: Fire, WeakenedBy: Metal, OvercomeBy: Water, Overcomes: Earth},
	Earth: {Generates: Fire, SameAs: Earth, WeakenedBy: Water, OvercomeBy: Wood, Overcomes: Metal},
}

// RolesFor returns the fixed role quintuple for menh.
func RolesFor(menh Element) Roles {
	return rolesTable[menh]
}

// RoleOf returns the role e holds relative to these roles. Every element
// holds exactly one role.
func (r Roles) RoleOf(e Element) Role {
	switch e {
	case r.Generates:
		return RoleSinh
	case r.SameAs:
		return RoleCung
	case r.OvercomeBy:
		return RoleKhac
	case r.Overcomes:
		return RoleSinhXuat
	default:
		return RoleBiKhac
	}
}

// Elements returns the quintuple in declaration order.
func (r Roles) Elements() [Count]Element {
	return [Count]Element{r.Generates, r.SameAs, r.WeakenedBy, r.OvercomeBy, r.Overcomes}
}
