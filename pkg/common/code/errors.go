package code

var (
	Success = newCode(0, "success")

	// request layer
	ParamErr       = newCode(40001, "param error")
	UnLogin        = newCode(40101, "user not login")
	InvalidToken   = newCode(40102, "invalid token")
	LoginFormatErr = newCode(40103, "login format error")
	UserOrPassErr  = newCode(40104, "username or password mismatch")
	RecordNotFound = newCode(40401, "record not found")
	UserExistErr   = newCode(40901, "username already exists")

	// calculation layer
	CalcInvalidInputErr     = newCode(42201, "invalid calculation input")
	BufferComponentParseErr = newCode(42202, "buffer component parse error")
	BufferUnsupportedErr    = newCode(42203, "unsupported buffer configuration")

	// storage layer
	CreateDataErr  = newCode(50001, "create data error")
	QueryRecordErr = newCode(50002, "query record error")
	UpdateDataErr  = newCode(50003, "update data error")
	DeleteDataErr  = newCode(50004, "delete data error")
	UnDefineErr    = newCode(50099, "undefined error")

	// notify center
	NotifyClosedErr    = newCode(50301, "notify center unavailable")
	BroadcastDataErr   = newCode(50302, "broadcast message error")
	NotifyDupActionErr = newCode(50303, "notify action already registered")
	NotifySendMsgErr   = newCode(50304, "notify send message error")

	// upstream services
	RPCHttpErr          = newCode(50201, "rpc http error")
	RPCHttpCodeErr      = newCode(50202, "rpc http status error")
	CompoundNotFoundErr = newCode(40402, "compound not found")
)
