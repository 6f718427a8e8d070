package models

// SystemParam is a free-standing configuration row, unrelated to any account.
type SystemParam struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	ParamCode  string `gorm:"size:64;not null" json:"param_code"`
	ParamValue string `gorm:"size:255;not null" json:"param_value"`
	ParamDesc  string `gorm:"size:255" json:"param_desc"`
	SysFlag    string `gorm:"size:1;not null;default:N" json:"sys_flag"`
}

// MenuItem forms a tree via ParentID (0 = root). ParentID is not checked
// against existing rows; keeping the tree consistent is up to the caller.
// DisplaySeq is a fixed-width string so lexicographic order is sort order.
type MenuItem struct {
	MenuID       uint   `gorm:"primaryKey" json:"menuid"`
	ParentID     uint   `gorm:"not null;default:0" json:"parent_id"`
	Name         string `gorm:"size:128;not null" json:"name"`
	Icon         string `gorm:"size:64" json:"icon"`
	URL          string `gorm:"size:255" json:"url"`
	VisibleFlag  string `gorm:"size:1;not null;default:Y" json:"visible_flag"`
	NewTabFlag   string `gorm:"size:1;not null;default:N" json:"open_in_new_tab_flag"`
	DisplaySeq   string `gorm:"size:10;not null;default:00100" json:"display_sequence"`
	LastEditor   uint   `gorm:"not null;default:0" json:"last_editor"`
	LastModified string `gorm:"size:14" json:"last_modified"`
}
