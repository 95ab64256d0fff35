package types_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/supremind/permit/types"
)

var _ = Describe("schema", func() {
	schema := types.Schema{
		"reports":  {"view", "export"},
		"accounts": {"suspend", "list"},
	}

	DescribeTable("declared pairs",
		func(res types.Resource, act types.Action, known bool) {
			Expect(schema.Defines(res, act)).To(Equal(known))
		},
		Entry("view reports", types.Resource("reports"), types.Action("view"), true),
		Entry("list accounts", types.Resource("accounts"), types.Action("list"), true),
		Entry("actions do not cross resources", types.Resource("reports"), types.Action("list"), false),
		Entry("unknown action", types.Resource("reports"), types.Action("delete"), false),
		Entry("unknown resource", types.Resource("sessions"), types.Action("view"), false),
	)

	It("lists resources in lexical order", func() {
		Expect(schema.Resources()).To(Equal([]types.Resource{"accounts", "reports"}))
	})

	It("lists actions in lexical order", func() {
		Expect(schema.Actions("accounts")).To(Equal([]types.Action{"list", "suspend"}))
	})

	It("has no actions for an unknown resource", func() {
		Expect(schema.Actions("sessions")).To(BeNil())
	})

	It("clones deeply", func() {
		cp := schema.Clone()
		cp["reports"][0] = "tamper"
		cp["sessions"] = []types.Action{"view"}

		Expect(schema.Defines("reports", "view")).To(BeTrue())
		Expect(schema.Defines("reports", "tamper")).To(BeFalse())
		Expect(schema).NotTo(HaveKey(types.Resource("sessions")))
	})
})

var _ = Describe("table", func() {
	table := types.Table{
		"operator": {
			"reports": {"view": types.Grant()},
		},
		"auditor": {
			"reports": {"view": types.Grant()},
		},
	}

	It("lists roles in lexical order", func() {
		Expect(table.Roles()).To(Equal([]types.Role{"auditor", "operator"}))
	})

	It("clones deeply", func() {
		cp := table.Clone()
		cp["operator"]["reports"]["view"] = types.Deny()
		cp["intruder"] = types.RuleSet{}

		Expect(table["operator"]["reports"]["view"].Allows(types.User{})).To(BeTrue())
		Expect(table).NotTo(HaveKey(types.Role("intruder")))
	})
})
