package service

// MenuSection groups the screens shown in the side menu.
type MenuSection struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// MenuFor returns the side menu for role. The admin section is only listed
// for admins.
func MenuFor(role string) []MenuSection {
	menu := []MenuSection{
		{Title: "Enregistrement", Items: []string{
			"Deposer Jeu",
			"Acheter Jeu",
			"Mettre en Rayon",
			"Retirer des Rayons",
			"Retirer des Stocks",
			"Ajouter Vendeur",
		}},
		{Title: "Inventaire", Items: []string{"Inventaire"}},
	}
	if role == RoleAdmin {
		menu = append(menu, MenuSection{Title: "Admin", Items: []string{
			"Transactions",
			"Bilan Général",
			"Rembourser Vendeur",
			"Sessions",
		}})
	}
	return menu
}
