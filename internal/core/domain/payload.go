package domain

// EventTypeCreateStandby is the repository_dispatch event the pipeline listens for.
const EventTypeCreateStandby = "create-physical-standby"

// DispatchPayload is the event handed to the automation pipeline. Its JSON shape
// is a contract with the pipeline's workflow files: renaming a key breaks it.
type DispatchPayload struct {
	EventType     string        `json:"eventType"`
	Timestamp     string        `json:"timestamp"`
	ClientPayload ClientPayload `json:"clientPayload"`
}

type ClientPayload struct {
	Primary       PrimaryPayload       `json:"primary"`
	Standby       StandbyPayload       `json:"standby"`
	RMAN          RMANPayload          `json:"rman"`
	Network       NetworkPayload       `json:"network"`
	Options       OptionsPayload       `json:"options"`
	Notifications NotificationsPayload `json:"notifications"`
	Approvals     ApprovalsPayload     `json:"approvals"`
}

// The section types below must keep the same field sequence as their
// NormalizedConfig counterparts; the payload builder converts between them.

type PrimaryPayload struct {
	Host          string `json:"host"`
	SSHPort       int    `json:"ssh_port"`
	SID           string `json:"sid"`
	DBUniqueName  string `json:"db_unique_name"`
	ListenerPort  int    `json:"listener_port"`
	OracleHome    string `json:"oracle_home"`
	OracleBase    string `json:"oracle_base"`
	OracleVersion string `json:"oracle_version"`
	DBRole        string `json:"db_role"`
	IsCDB         bool   `json:"is_cdb"`
	PDBList       string `json:"pdb_list"`
	StorageType   string `json:"storage_type"`
	ASMDataGroup  string `json:"asm_dg_data"`
	ASMFRAGroup   string `json:"asm_dg_fra"`
	DataDir       string `json:"data_dir"`
	SSHUser       string `json:"ssh_user"`
}

type StandbyPayload struct {
	Host         string `json:"host"`
	SSHPort      int    `json:"ssh_port"`
	SID          string `json:"sid"`
	DBUniqueName string `json:"db_unique_name"`
	ListenerPort int    `json:"listener_port"`
	OracleHome   string `json:"oracle_home"`
	OracleBase   string `json:"oracle_base"`
	DBRole       string `json:"db_role"`
	StorageType  string `json:"storage_type"`
	ASMDataGroup string `json:"asm_dg_data"`
	ASMFRAGroup  string `json:"asm_dg_fra"`
	DataDir      string `json:"data_dir"`
	FRADir       string `json:"fra_dir"`
	SSHUser      string `json:"ssh_user"`
}

type RMANPayload struct {
	Method             string `json:"method"`
	Parallelism        int    `json:"parallelism"`
	Compression        string `json:"compression"`
	SectionSizeMB      int    `json:"section_size_mb"`
	BackupLocation     string `json:"backup_location"`
	BackupTag          string `json:"backup_tag"`
	DBFileNameConvert  string `json:"db_file_name_convert"`
	LogFileNameConvert string `json:"log_file_name_convert"`
	NoFilenameCheck    bool   `json:"nofilenamecheck"`
	AdditionalCommands string `json:"additional_commands"`
}

type NetworkPayload struct {
	RedoTransport     string `json:"redo_transport"`
	StandbyRedoGroups int    `json:"standby_redo_groups"`
	StandbyRedoSizeMB int    `json:"standby_redo_size_mb"`
	NetTimeout        int    `json:"net_timeout"`
}

type OptionsPayload struct {
	ForceLogging    bool   `json:"force_logging"`
	Flashback       bool   `json:"flashback"`
	ArchivelogCheck bool   `json:"archivelog_check"`
	StandbyFileMgmt bool   `json:"standby_file_mgmt"`
	StartMRP        bool   `json:"start_mrp"`
	OpenReadOnly    bool   `json:"open_readonly"`
	RealTimeApply   bool   `json:"real_time_apply"`
	ProtectionMode  string `json:"protection_mode"`
}

type NotificationsPayload struct {
	EmailTo      string `json:"email_to"`
	SMTPServer   string `json:"smtp_server"`
	SlackWebhook string `json:"slack_webhook"`
}

type ApprovalsPayload struct {
	Precheck bool `json:"gate_precheck"`
	Primary  bool `json:"gate_primary"`
	RMAN     bool `json:"gate_rman"`
	GoLive   bool `json:"gate_golive"`
}
