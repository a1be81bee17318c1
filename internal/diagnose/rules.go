package diagnose

// PatternID names one recognized failure scenario.
type PatternID string

// Async and promises.
const (
	UnhandledRejection   PatternID = "unhandled-rejection"
	PromiseNotCaught     PatternID = "promise-not-caught"
	PromiseResolvedTwice PatternID = "promise-resolved-twice"
	AwaitOutsideAsync    PatternID = "await-outside-async"
	ThenNotFunction      PatternID = "then-not-function"
	CallbackNotFunction  PatternID = "callback-not-function"
	CallbackCalledTwice  PatternID = "callback-called-twice"
)

// Null and undefined access.
const (
	ReadUndefined        PatternID = "read-undefined"
	ReadNull             PatternID = "read-null"
	SetUndefined         PatternID = "set-undefined"
	SetNull              PatternID = "set-null"
	DestructureUndefined PatternID = "destructure-undefined"
	NullToObject         PatternID = "null-to-object"
)

// Type errors.
const (
	NotAFunction        PatternID = "not-a-function"
	NotAConstructor     PatternID = "not-a-constructor"
	NotIterable         PatternID = "not-iterable"
	ConstReassignment   PatternID = "const-reassignment"
	ReadOnlyProperty    PatternID = "read-only-property"
	BigIntMix           PatternID = "bigint-mix"
	ClassWithoutNew     PatternID = "class-without-new"
	InvalidArgType      PatternID = "invalid-arg-type"
	SymbolConversion    PatternID = "symbol-conversion"
	InvalidTimeValue    PatternID = "invalid-time-value"
	InOperatorPrimitive PatternID = "in-operator-primitive"
)

// Reference errors.
const (
	CommonJSGlobalInESM PatternID = "commonjs-global-in-esm"
	TemporalDeadZone    PatternID = "temporal-dead-zone"
	NotDefined          PatternID = "not-defined"
)

// Network and system error codes.
const (
	PortInUse         PatternID = "port-in-use"
	ConnectionRefused PatternID = "connection-refused"
	ConnectionReset   PatternID = "connection-reset"
	HostNotFound      PatternID = "host-not-found"
	TimedOut          PatternID = "timed-out"
	PermissionDenied  PatternID = "permission-denied"
	FileNotFound      PatternID = "file-not-found"
	IsADirectory      PatternID = "is-a-directory"
	NotADirectory     PatternID = "not-a-directory"
	TooManyOpenFiles  PatternID = "too-many-open-files"
	BrokenPipe        PatternID = "broken-pipe"
	FileExists        PatternID = "file-exists"
	DirectoryNotEmpty PatternID = "directory-not-empty"
	NotPermitted      PatternID = "not-permitted"
	NoSpaceLeft       PatternID = "no-space-left"
)

// HTTP servers and clients.
const (
	HeadersAlreadySent  PatternID = "headers-already-sent"
	RouteMissingHandler PatternID = "route-missing-handler"
	InvalidStatusCode   PatternID = "invalid-status-code"
	FetchFailed         PatternID = "fetch-failed"
	SelfSignedCert      PatternID = "self-signed-cert"
	CertExpired         PatternID = "cert-expired"
)

// Syntax errors.
const (
	ImportOutsideModule  PatternID = "import-outside-module"
	UnexpectedEndOfInput PatternID = "unexpected-end-of-input"
	UnexpectedExport     PatternID = "unexpected-export"
	MissingParen         PatternID = "missing-paren"
	InvalidToken         PatternID = "invalid-token"
	DuplicateDeclaration PatternID = "duplicate-declaration"
	UnexpectedIdentifier PatternID = "unexpected-identifier"
	IllegalReturn        PatternID = "illegal-return"
	ReservedWord         PatternID = "reserved-word"
)

// JSON.
const (
	JSONUnexpectedEnd   PatternID = "json-unexpected-end"
	JSONUnexpectedToken PatternID = "json-unexpected-token"
	JSONCircular        PatternID = "json-circular"
	JSONBigInt          PatternID = "json-bigint"
)

// Module system.
const (
	RequireESM             PatternID = "require-esm"
	UnknownFileExtension   PatternID = "unknown-file-extension"
	PackagePathNotExported PatternID = "package-path-not-exported"
	ESMModuleNotFound      PatternID = "esm-module-not-found"
	ModuleNotFound         PatternID = "module-not-found"
	ImportMetaOutsideESM   PatternID = "import-meta-outside-esm"
	NamedExportMissing     PatternID = "named-export-missing"
)

// Recursion and memory.
const (
	StackOverflow      PatternID = "stack-overflow"
	HeapOutOfMemory    PatternID = "heap-out-of-memory"
	InvalidArrayLength PatternID = "invalid-array-length"
	StringTooLong      PatternID = "string-too-long"
)

// Regular expressions.
const (
	InvalidRegex PatternID = "invalid-regex"
)

// Circular references.
const (
	CircularDependency PatternID = "circular-dependency"
	CircularReference  PatternID = "circular-reference"
)

// Database drivers.
const (
	MongoConnection         PatternID = "mongo-connection"
	MongoDuplicateKey       PatternID = "mongo-duplicate-key"
	PostgresAuth            PatternID = "postgres-auth"
	PostgresMissingRelation PatternID = "postgres-missing-relation"
	MySQLAccessDenied       PatternID = "mysql-access-denied"
	PrismaClient            PatternID = "prisma-client"
	SequelizeConnection     PatternID = "sequelize-connection"
	RedisConnection         PatternID = "redis-connection"
)

// Array and object mutation.
const (
	ObjectNotExtensible PatternID = "object-not-extensible"
	FrozenDelete        PatternID = "frozen-delete"
	ReduceEmptyArray    PatternID = "reduce-empty-array"
)

// Encoding.
const (
	MalformedURI     PatternID = "malformed-uri"
	InvalidCharacter PatternID = "invalid-character"
	UnknownEncoding  PatternID = "unknown-encoding"
)

// Cryptography and tokens.
const (
	BadDecrypt         PatternID = "bad-decrypt"
	InvalidKeyLength   PatternID = "invalid-key-length"
	DigestNotSupported PatternID = "digest-not-supported"
	JWTExpired         PatternID = "jwt-expired"
	JWTInvalid         PatternID = "jwt-invalid"
)

// Workers and threads.
const (
	WorkerDataClone  PatternID = "worker-data-clone"
	WorkerTerminated PatternID = "worker-terminated"
	WorkerPath       PatternID = "worker-path"
)

// Streams and events.
const (
	StreamWriteAfterEnd  PatternID = "stream-write-after-end"
	StreamPrematureClose PatternID = "stream-premature-close"
	StreamPushAfterEOF   PatternID = "stream-push-after-eof"
	UnhandledErrorEvent  PatternID = "unhandled-error-event"
	MaxListenersExceeded PatternID = "max-listeners-exceeded"
)

// Assertions and deprecations.
const (
	AssertionFailed PatternID = "assertion-failed"
	Deprecation     PatternID = "deprecation"
)

// Coarse fallbacks keyed on the error kind.
const (
	GenericSyntax    PatternID = "generic-syntax"
	GenericType      PatternID = "generic-type"
	GenericReference PatternID = "generic-reference"
	GenericRange     PatternID = "generic-range"
	GenericURI       PatternID = "generic-uri"
	GenericEval      PatternID = "generic-eval"
	GenericAggregate PatternID = "generic-aggregate"
	GenericRuntime   PatternID = "generic-runtime"
	Generic          PatternID = "generic"
)

// DefaultRules returns the fixed rule order. Each call returns a fresh slice.
func DefaultRules() []Rule {
	return []Rule{
		// async / promise
		{UnhandledRejection, anyOf(rawHas("unhandledpromiserejection"), msgHas("unhandled promise rejection"))},
		{PromiseNotCaught, msgHas("promise", "catch")},
		{PromiseResolvedTwice, anyOf(msgHas("promise", "resolved"), rawHas("multipleresolves"))},
		{AwaitOutsideAsync, msgHas("await is only valid in async")},
		{ThenNotFunction, msgHas(".then is not a function")},
		{CallbackNotFunction, allOf(msgHas("callback"), anyOf(msgHas("not a function"), msgHas("must be a function")))},
		{CallbackCalledTwice, anyOf(msgHas("callback was already called"), codeIs("ERR_MULTIPLE_CALLBACK"))},

		// null / undefined access
		{ReadUndefined, anyOf(msgHas("cannot read properties of undefined"), msgHas("cannot read property", "of undefined"))},
		{ReadNull, anyOf(msgHas("cannot read properties of null"), msgHas("cannot read property", "of null"))},
		{SetUndefined, msgHas("cannot set properties of undefined")},
		{SetNull, msgHas("cannot set properties of null")},
		{DestructureUndefined, msgHas("cannot destructure")},
		{NullToObject, msgHas("cannot convert undefined or null to object")},

		// type errors
		{NotAFunction, msgHas("is not a function")},
		{NotAConstructor, msgHas("is not a constructor")},
		{NotIterable, msgHas("is not iterable")},
		{ConstReassignment, msgHas("assignment to constant variable")},
		{ReadOnlyProperty, msgHas("cannot assign to read only property")},
		{BigIntMix, msgHas("cannot mix bigint")},
		{ClassWithoutNew, msgHas("class constructor", "without 'new'")},
		{InvalidArgType, codeIs("ERR_INVALID_ARG_TYPE", "ERR_INVALID_ARG_VALUE")},
		{SymbolConversion, msgHas("cannot convert a symbol")},
		{InvalidTimeValue, msgHas("invalid time value")},
		{InOperatorPrimitive, msgHas("cannot use 'in' operator")},

		// reference errors
		{CommonJSGlobalInESM, anyOf(
			msgHas("require is not defined"),
			msgHas("exports is not defined"),
			msgHas("module is not defined"),
			msgHas("__dirname is not defined"),
			msgHas("__filename is not defined"),
		)},
		{TemporalDeadZone, msgHas("before initialization")},
		{NotDefined, allOf(kindIs("ReferenceError"), msgHas("is not defined"))},

		// network / system codes
		{PortInUse, codeIs("EADDRINUSE")},
		{ConnectionRefused, codeIs("ECONNREFUSED")},
		{ConnectionReset, codeIs("ECONNRESET")},
		{HostNotFound, codeIs("ENOTFOUND", "EAI_AGAIN")},
		{TimedOut, codeIs("ETIMEDOUT")},
		{PermissionDenied, codeIs("EACCES")},
		{FileNotFound, codeIs("ENOENT")},
		{IsADirectory, codeIs("EISDIR")},
		{NotADirectory, codeIs("ENOTDIR")},
		{TooManyOpenFiles, codeIs("EMFILE", "ENFILE")},
		{BrokenPipe, codeIs("EPIPE")},
		{FileExists, codeIs("EEXIST")},
		{DirectoryNotEmpty, codeIs("ENOTEMPTY")},
		{NotPermitted, codeIs("EPERM")},
		{NoSpaceLeft, codeIs("ENOSPC")},

		// HTTP frameworks
		{HeadersAlreadySent, anyOf(codeIs("ERR_HTTP_HEADERS_SENT"), msgHas("cannot set headers after they are sent"))},
		{RouteMissingHandler, anyOf(msgHas("requires a callback function"), msgHas("requires a middleware function"))},
		{InvalidStatusCode, anyOf(codeIs("ERR_HTTP_INVALID_STATUS_CODE"), msgHas("invalid status code"))},
		{FetchFailed, msgHas("fetch failed")},
		{SelfSignedCert, anyOf(msgHas("self signed certificate"), msgHas("self-signed certificate"), codeIs("DEPTH_ZERO_SELF_SIGNED_CERT", "SELF_SIGNED_CERT_IN_CHAIN"))},
		{CertExpired, anyOf(msgHas("certificate has expired"), codeIs("CERT_HAS_EXPIRED"))},

		// syntax
		{ImportOutsideModule, msgHas("cannot use import statement outside a module")},
		{UnexpectedEndOfInput, msgHas("unexpected end of input")},
		{UnexpectedExport, msgHas("unexpected token 'export'")},
		{MissingParen, msgHas("missing ) after argument list")},
		{InvalidToken, msgHas("invalid or unexpected token")},
		{DuplicateDeclaration, msgHas("has already been declared")},
		{UnexpectedIdentifier, msgHas("unexpected identifier")},
		{IllegalReturn, msgHas("illegal return statement")},
		{ReservedWord, msgHas("unexpected reserved word")},

		// JSON
		{JSONUnexpectedEnd, msgHas("unexpected end of json input")},
		{JSONUnexpectedToken, allOf(kindIs("SyntaxError"), msgHas("json"))},
		{JSONCircular, msgHas("converting circular structure to json")},
		{JSONBigInt, msgHas("do not know how to serialize a bigint")},

		// module system
		{RequireESM, codeIs("ERR_REQUIRE_ESM")},
		{UnknownFileExtension, codeIs("ERR_UNKNOWN_FILE_EXTENSION")},
		{PackagePathNotExported, codeIs("ERR_PACKAGE_PATH_NOT_EXPORTED")},
		{ESMModuleNotFound, codeIs("ERR_MODULE_NOT_FOUND")},
		{ModuleNotFound, anyOf(kindIs(ModuleNotFoundKind), codeIs("MODULE_NOT_FOUND"))},
		{ImportMetaOutsideESM, msgHas("import.meta")},
		{NamedExportMissing, msgHas("does not provide an export named")},

		// recursion / memory
		{StackOverflow, msgHas("maximum call stack size exceeded")},
		{HeapOutOfMemory, anyOf(rawHas("heap out of memory"), rawHas("allocation failed"))},
		{InvalidArrayLength, msgHas("invalid array length")},
		{StringTooLong, msgHas("invalid string length")},

		// regex
		{InvalidRegex, msgHas("invalid regular expression")},

		// circular references
		{CircularDependency, allOf(rawHas("circular"), anyOf(rawHas("dependency"), rawHas("require cycle")))},
		{CircularReference, msgHas("circular")},

		// database drivers
		{MongoConnection, anyOf(rawHas("mongoserverselectionerror"), rawHas("mongonetworkerror"))},
		{MongoDuplicateKey, rawHas("e11000 duplicate key")},
		{PostgresAuth, rawHas("password authentication failed")},
		{PostgresMissingRelation, rawHas("relation \"", "does not exist")},
		{MySQLAccessDenied, anyOf(rawHas("er_access_denied_error"), rawHas("access denied for user"))},
		{PrismaClient, anyOf(rawHas("prismaclient"), rawHas("@prisma/client"))},
		{SequelizeConnection, rawHas("sequelizeconnection")},
		{RedisConnection, anyOf(rawHas("redis connection"), rawHas("ioredis"))},

		// array / object mutation
		{ObjectNotExtensible, msgHas("object is not extensible")},
		{FrozenDelete, msgHas("cannot delete property")},
		{ReduceEmptyArray, msgHas("reduce of empty array with no initial value")},

		// encoding
		{MalformedURI, msgHas("uri malformed")},
		{InvalidCharacter, anyOf(codeIs("ERR_INVALID_CHAR"), msgHas("invalid character"))},
		{UnknownEncoding, anyOf(codeIs("ERR_UNKNOWN_ENCODING"), msgHas("unknown encoding"))},

		// cryptography
		{BadDecrypt, msgHas("bad decrypt")},
		{InvalidKeyLength, msgHas("invalid key length")},
		{DigestNotSupported, msgHas("digest method not supported")},
		{JWTExpired, anyOf(rawHas("tokenexpirederror"), rawHas("jwt expired"))},
		{JWTInvalid, anyOf(rawHas("jsonwebtokenerror"), rawHas("invalid signature"))},

		// workers
		{WorkerDataClone, msgHas("could not be cloned")},
		{WorkerTerminated, msgHas("worker terminated")},
		{WorkerPath, codeIs("ERR_WORKER_PATH")},

		// streams
		{StreamWriteAfterEnd, anyOf(codeIs("ERR_STREAM_WRITE_AFTER_END"), msgHas("write after end"))},
		{StreamPrematureClose, anyOf(codeIs("ERR_STREAM_PREMATURE_CLOSE"), msgHas("premature close"))},
		{StreamPushAfterEOF, anyOf(codeIs("ERR_STREAM_PUSH_AFTER_EOF"), msgHas("stream.push() after eof"))},
		{UnhandledErrorEvent, anyOf(codeIs("ERR_UNHANDLED_ERROR"), msgHas("unhandled 'error' event"))},
		{MaxListenersExceeded, rawHas("maxlistenersexceededwarning")},

		// assertion
		{AssertionFailed, anyOf(kindIs("AssertionError"), codeIs("ERR_ASSERTION"))},

		// deprecation
		{Deprecation, anyOf(rawHas("deprecationwarning"), rawHas("[dep0"))},

		// coarse fallbacks
		{GenericSyntax, kindIs("SyntaxError")},
		{GenericType, kindIs("TypeError")},
		{GenericReference, kindIs("ReferenceError")},
		{GenericRange, kindIs("RangeError")},
		{GenericURI, kindIs("URIError")},
		{GenericEval, kindIs("EvalError")},
		{GenericAggregate, kindIs("AggregateError")},
		{GenericRuntime, kindIs("Error")},
	}
}
