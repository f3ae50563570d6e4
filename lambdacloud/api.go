package lambdacloud

// API is the part of the Lambda Cloud API used by the watcher.
type API interface {
	ListInstanceTypes() (InstanceTypeCatalog, error)
	LaunchInstance(req LaunchRequest) (LaunchResult, error)
}
