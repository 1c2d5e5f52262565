package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTopology() *Topology {
	return &Topology{
		InstanceGroups: []InstanceGroup{
			{
				Name: "controller-machines",
				Instances: []Instance{
					{InstanceName: "controller-1", CustomerIPAddress: "10.0.0.1"},
				},
			},
			{
				Name: "login-machines",
				Instances: []Instance{
					{InstanceName: "login-1", CustomerIPAddress: "10.0.0.2"},
				},
			},
			{
				Name: "worker-machines",
				Instances: []Instance{
					{InstanceName: "worker-1", CustomerIPAddress: "10.0.1.1"},
					{InstanceName: "worker-2", CustomerIPAddress: "10.0.1.2"},
				},
			},
		},
	}
}

func TestLoadTopology(t *testing.T) {
	path := writeTempFile(t, "resource_config.json", `{
		"InstanceGroups": [
			{
				"Name": "controller-machines",
				"Instances": [
					{"InstanceName": "controller-1", "CustomerIpAddress": "10.0.0.1"}
				]
			},
			{
				"Name": "worker-machines",
				"Instances": [
					{"InstanceName": "worker-1", "CustomerIpAddress": "10.0.1.1"},
					{"InstanceName": "worker-2", "CustomerIpAddress": "10.0.1.2"}
				]
			}
		]
	}`)

	topo, err := LoadTopology(path)
	require.NoError(t, err)
	require.Len(t, topo.InstanceGroups, 2)
	assert.Equal(t, []string{"10.0.1.1", "10.0.1.2"}, topo.AddressesOf("worker-machines"))
}

func TestTopologyValidate(t *testing.T) {
	tests := []struct {
		name    string
		topo    Topology
		wantErr string
	}{
		{
			name: "duplicate group name",
			topo: Topology{InstanceGroups: []InstanceGroup{
				{Name: "workers"},
				{Name: "workers"},
			}},
			wantErr: "duplicate instance group",
		},
		{
			name: "duplicate address within group",
			topo: Topology{InstanceGroups: []InstanceGroup{
				{Name: "workers", Instances: []Instance{
					{InstanceName: "a", CustomerIPAddress: "10.0.0.5"},
					{InstanceName: "b", CustomerIPAddress: "10.0.0.5"},
				}},
			}},
			wantErr: "duplicate address",
		},
		{
			name: "same address in different groups is allowed",
			topo: Topology{InstanceGroups: []InstanceGroup{
				{Name: "a", Instances: []Instance{{InstanceName: "n1", CustomerIPAddress: "10.0.0.5"}}},
				{Name: "b", Instances: []Instance{{InstanceName: "n2", CustomerIPAddress: "10.0.0.5"}}},
			}},
		},
		{
			name: "empty topology",
			topo: Topology{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.topo.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestTopologyAddressesOf(t *testing.T) {
	topo := testTopology()

	assert.Equal(t, []string{"10.0.0.1"}, topo.AddressesOf("controller-machines"))
	assert.Equal(t, []string{"10.0.1.1", "10.0.1.2"}, topo.AddressesOf("worker-machines"))
	assert.Nil(t, topo.AddressesOf("no-such-group"))
}

func TestTopologyFindInstanceByAddress(t *testing.T) {
	topo := testTopology()

	group, inst, ok := topo.FindInstanceByAddress("10.0.1.2")
	require.True(t, ok)
	assert.Equal(t, "worker-machines", group.Name)
	assert.Equal(t, "worker-2", inst.InstanceName)

	_, _, ok = topo.FindInstanceByAddress("192.168.0.1")
	assert.False(t, ok)
}
