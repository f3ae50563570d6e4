package watcher

import (
	"fmt"
	"time"

	"github.com/mitchellh/cli"
	"github.com/yekta/lambdalabs-bot/config"
	"github.com/yekta/lambdalabs-bot/lambdacloud"
	"github.com/yekta/lambdalabs-bot/status"
)

// Watcher polls the provider for capacity of the configured instance type
// and launches a single instance once a region becomes available.
type Watcher struct {
	Ui     cli.Ui
	API    lambdacloud.API
	Status *status.Store
	Config *config.Config

	polls    int
	errors   int
	launches int
}

// Start runs the poll-launch loop. It returns only after an instance has
// been launched; any error inside an iteration is recorded in the status
// store and retried after the configured wait, forever.
func (w *Watcher) Start() error {
	w.Ui.Info("Watch loop started")
	for {
		w.Status.SetRunning()

		result, err := w.RunOnce()
		if err != nil {
			w.errors++
			w.publishMetrics()
			w.Ui.Error(fmt.Sprint(err))
			w.Status.SetError(err)
			w.Ui.Info(fmt.Sprintf("Retrying in %s", w.Config.ErrorWait()))
			<-time.After(w.Config.ErrorWait())
			continue
		}

		if result != nil {
			w.launches++
			w.publishMetrics()
			w.Status.SetLaunched(result)
			w.Ui.Info(fmt.Sprintf("Instance launch result: %v", result))
			w.Ui.Info("Watch loop finished")
			return nil
		}

		w.Ui.Info(fmt.Sprintf("No available regions for %s, checking again in %s", w.Config.InstanceTypeName, w.Config.CheckInterval()))
		<-time.After(w.Config.CheckInterval())
	}
}

// RunOnce performs one availability check and, if any region reports
// capacity, issues the launch request. A nil result without error means no
// capacity yet.
func (w *Watcher) RunOnce() (lambdacloud.LaunchResult, error) {
	w.polls++
	w.publishMetrics()

	catalog, err := w.API.ListInstanceTypes()
	if err != nil {
		return nil, err
	}

	region, ok := catalog.AvailableRegion(w.Config.InstanceTypeName)
	if !ok {
		return nil, nil
	}

	w.Ui.Info(fmt.Sprintf("%s is available in region %s", w.Config.InstanceTypeName, region))

	if w.Config.DryRun {
		w.Ui.Info(fmt.Sprintf("Dry run: skipping launch in %s", region))
		return nil, nil
	}

	w.Ui.Info(fmt.Sprintf("Launching %s in %s with SSH key %s", w.Config.InstanceTypeName, region, w.Config.SSHKeyName))

	return w.API.LaunchInstance(lambdacloud.LaunchRequest{
		RegionName:       region,
		InstanceTypeName: w.Config.InstanceTypeName,
		SSHKeyNames:      []string{w.Config.SSHKeyName},
		Quantity:         1,
	})
}

func (w *Watcher) publishMetrics() {
	w.Status.UpdateMetric("polls", float64(w.polls))
	w.Status.UpdateMetric("errors", float64(w.errors))
	w.Status.UpdateMetric("launches", float64(w.launches))
}
