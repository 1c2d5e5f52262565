package role

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkrall/nodeup/internal/config"
)

func TestFromDeclared(t *testing.T) {
	tests := []struct {
		declared string
		want     Role
	}{
		{"controller", Controller},
		{"login", Login},
		{"compute", Compute},
		{"", Compute},
		{"head-node", Compute},
		{"CONTROLLER", Compute}, // declared values are case-sensitive
	}

	for _, tt := range tests {
		t.Run("declared="+tt.declared, func(t *testing.T) {
			assert.Equal(t, tt.want, FromDeclared(tt.declared))
		})
	}
}

func TestRoleString(t *testing.T) {
	assert.Equal(t, "controller", Controller.String())
	assert.Equal(t, "login", Login.String())
	assert.Equal(t, "compute", Compute.String())
}

func TestFromTopology(t *testing.T) {
	topo := &config.Topology{
		InstanceGroups: []config.InstanceGroup{
			{Name: "ctl", Instances: []config.Instance{
				{InstanceName: "controller-1", CustomerIPAddress: "10.0.0.1"},
			}},
			{Name: "lgn", Instances: []config.Instance{
				{InstanceName: "login-1", CustomerIPAddress: "10.0.0.2"},
			}},
			{Name: "workers", Instances: []config.Instance{
				{InstanceName: "worker-1", CustomerIPAddress: "10.0.1.1"},
			}},
		},
	}

	tests := []struct {
		name   string
		addr   string
		want   Role
		wantOK bool
	}{
		{"controller group member", "10.0.0.1", Controller, true},
		{"login group member", "10.0.0.2", Login, true},
		{"other group member", "10.0.1.1", Compute, true},
		{"address not in topology", "192.168.1.1", Compute, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromTopology(tt.addr, topo, "ctl", "lgn")
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}
