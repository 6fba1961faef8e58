package entity

// Roles de usuario del punto de venta. El token JWT lleva uno de estos valores
// en el claim "role".
const (
	RoleAdministrator = "Administrator"
	RoleShopManager   = "ShopManager"
	RoleCashier       = "Cashier"
)

// DashboardRoles son los roles que pueden consultar el dashboard.
var DashboardRoles = []string{RoleAdministrator, RoleShopManager, RoleCashier}
