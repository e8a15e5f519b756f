package domain

// NormalizedConfig is the fully defaulted description of a primary/standby pair.
// The mapstructure tags name the section and field keys used by the normalizer's
// field table; the validate and label tags drive the required-field check.
type NormalizedConfig struct {
	Primary           PrimaryNode       `mapstructure:"primary"`
	Standby           StandbyNode       `mapstructure:"standby"`
	ReplicationMethod ReplicationMethod `mapstructure:"replicationMethod"`
	Network           Network           `mapstructure:"network"`
	Options           Options           `mapstructure:"options"`
	Notifications     Notifications     `mapstructure:"notifications"`
	ApprovalGates     ApprovalGates     `mapstructure:"approvalGates"`
}

// PrimaryNode describes the source database.
type PrimaryNode struct {
	Host          string `mapstructure:"host" validate:"required" label:"Primary Host"`
	SSHPort       int    `mapstructure:"ssh_port"`
	SID           string `mapstructure:"sid" validate:"required" label:"Primary SID"`
	DBUniqueName  string `mapstructure:"db_unique_name" validate:"required" label:"Primary DB Unique Name"`
	ListenerPort  int    `mapstructure:"listener_port"`
	OracleHome    string `mapstructure:"oracle_home" validate:"required" label:"Primary Oracle Home"`
	OracleBase    string `mapstructure:"oracle_base"`
	OracleVersion string `mapstructure:"oracle_version"`
	DBRole        string `mapstructure:"db_role"`
	IsCDB         bool   `mapstructure:"is_cdb"`
	PDBList       string `mapstructure:"pdb_list"`
	StorageType   string `mapstructure:"storage_type"`
	ASMDataGroup  string `mapstructure:"asm_dg_data"`
	ASMFRAGroup   string `mapstructure:"asm_dg_fra"`
	DataDir       string `mapstructure:"data_dir"`
	SSHUser       string `mapstructure:"ssh_user"`
}

// StandbyNode describes the replica to be built.
type StandbyNode struct {
	Host         string `mapstructure:"host" validate:"required" label:"Standby Host"`
	SSHPort      int    `mapstructure:"ssh_port"`
	SID          string `mapstructure:"sid" validate:"required" label:"Standby SID"`
	DBUniqueName string `mapstructure:"db_unique_name" validate:"required" label:"Standby DB Unique Name"`
	ListenerPort int    `mapstructure:"listener_port"`
	OracleHome   string `mapstructure:"oracle_home" validate:"required" label:"Standby Oracle Home"`
	OracleBase   string `mapstructure:"oracle_base"`
	DBRole       string `mapstructure:"db_role"`
	StorageType  string `mapstructure:"storage_type"`
	ASMDataGroup string `mapstructure:"asm_dg_data"`
	ASMFRAGroup  string `mapstructure:"asm_dg_fra"`
	DataDir      string `mapstructure:"data_dir"`
	FRADir       string `mapstructure:"fra_dir"`
	SSHUser      string `mapstructure:"ssh_user"`
}

// ReplicationMethod holds the RMAN duplicate settings used to seed the standby.
type ReplicationMethod struct {
	Method             string `mapstructure:"method"`
	Parallelism        int    `mapstructure:"parallelism"`
	Compression        string `mapstructure:"compression"`
	SectionSizeMB      int    `mapstructure:"section_size_mb"` // 0 means unset
	BackupLocation     string `mapstructure:"backup_location"`
	BackupTag          string `mapstructure:"backup_tag"`
	DBFileNameConvert  string `mapstructure:"db_file_name_convert"`
	LogFileNameConvert string `mapstructure:"log_file_name_convert"`
	NoFilenameCheck    bool   `mapstructure:"nofilenamecheck"`
	AdditionalCommands string `mapstructure:"additional_commands"`
}

// Network holds redo transport settings.
type Network struct {
	RedoTransport     string `mapstructure:"redo_transport"`
	StandbyRedoGroups int    `mapstructure:"standby_redo_groups"`
	StandbyRedoSizeMB int    `mapstructure:"standby_redo_size_mb"`
	NetTimeout        int    `mapstructure:"net_timeout"`
}

// Options holds the Data Guard switches applied after the duplicate.
type Options struct {
	ForceLogging    bool   `mapstructure:"force_logging"`
	Flashback       bool   `mapstructure:"flashback"`
	ArchivelogCheck bool   `mapstructure:"archivelog_check"`
	StandbyFileMgmt bool   `mapstructure:"standby_file_mgmt"`
	StartMRP        bool   `mapstructure:"start_mrp"`
	OpenReadOnly    bool   `mapstructure:"open_readonly"`
	RealTimeApply   bool   `mapstructure:"real_time_apply"`
	ProtectionMode  string `mapstructure:"protection_mode"`
}

type Notifications struct {
	EmailTo      string `mapstructure:"email_to"`
	SMTPServer   string `mapstructure:"smtp_server"`
	SlackWebhook string `mapstructure:"slack_webhook"`
}

// ApprovalGates marks which pipeline phases wait for a manual confirmation.
type ApprovalGates struct {
	Precheck bool `mapstructure:"gate_precheck"`
	Primary  bool `mapstructure:"gate_primary"`
	RMAN     bool `mapstructure:"gate_rman"`
	GoLive   bool `mapstructure:"gate_golive"`
}

// ValidationResult carries the outcome of the cross-field rules.
// Errors block a dispatch; warnings are advisory.
type ValidationResult struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// HasErrors reports whether the configuration is unsafe to dispatch.
func (r ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// TriggerResult is returned for a dispatched or dry-run trigger.
type TriggerResult struct {
	Success bool             `json:"success"`
	DryRun  bool             `json:"dry_run"`
	Message string           `json:"message"`
	RunURL  string           `json:"run_url,omitempty"`
	Payload *DispatchPayload `json:"payload,omitempty"`
}
