package dto

type SystemParamRequest struct {
	ParamCode  string `json:"param_code"`
	ParamValue string `json:"param_value"`
	ParamDesc  string `json:"param_desc"`
	SysFlag    string `json:"sys_flag"`
}

type MenuRequest struct {
	ParentID    uint   `json:"parent_id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	URL         string `json:"url"`
	VisibleFlag string `json:"visible_flag"`
	NewTabFlag  string `json:"open_in_new_tab_flag"`
	DisplaySeq  string `json:"display_sequence"`
}
